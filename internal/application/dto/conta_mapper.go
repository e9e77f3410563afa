package dto

import "github.com/JoaoAlvarez/contas-api/internal/domain/entity"

// ContaToView converte a entidade para a representação de saída.
func ContaToView(c *entity.Conta) ViewContaDTO {
	return ViewContaDTO{
		ID:             c.ID,
		DataVencimento: c.DataVencimento,
		DataPagamento:  c.DataPagamento,
		Valor:          c.Valor,
		Descricao:      c.Descricao,
		Situacao:       c.Situacao,
	}
}

// ContasToView converte uma lista, nunca devolvendo nil.
func ContasToView(l []*entity.Conta) []ViewContaDTO {
	out := make([]ViewContaDTO, 0, len(l))
	for _, c := range l {
		out = append(out, ContaToView(c))
	}
	return out
}

// ViewToConta reconstrói a entidade a partir da view (ida e volta sem perda).
func ViewToConta(v ViewContaDTO) *entity.Conta {
	return &entity.Conta{
		ID:             v.ID,
		DataVencimento: v.DataVencimento,
		DataPagamento:  v.DataPagamento,
		Valor:          v.Valor,
		Descricao:      v.Descricao,
		Situacao:       v.Situacao,
	}
}

// ManterToConta converte o body de manutenção para a entidade.
// Campos nulos ficam com o zero value; quem decide o merge é o use case.
func ManterToConta(in *ManterContaDTO) *entity.Conta {
	c := &entity.Conta{
		DataVencimento: in.DataVencimento,
		DataPagamento:  in.DataPagamento,
	}
	if in.ID != nil {
		c.ID = *in.ID
	}
	if in.Descricao != nil {
		c.Descricao = *in.Descricao
	}
	if in.Valor != nil {
		c.Valor = *in.Valor
	}
	if in.Situacao != nil {
		c.Situacao = *in.Situacao
	}
	return c
}
