package usecase

import (
	"context"

	"github.com/JoaoAlvarez/contas-api/internal/application/dto"
	"github.com/JoaoAlvarez/contas-api/internal/domain"
	"github.com/JoaoAlvarez/contas-api/internal/domain/entity"
	"github.com/JoaoAlvarez/contas-api/internal/domain/repository"
	"github.com/JoaoAlvarez/contas-api/pkg/datebr"
	"github.com/shopspring/decimal"
)

// ContaUseCase regras de negócio de contas a pagar.
type ContaUseCase struct {
	repo repository.ContaRepository
}

// NewContaUseCase constrói o caso de uso com o porto de persistência.
func NewContaUseCase(repo repository.ContaRepository) *ContaUseCase {
	return &ContaUseCase{repo: repo}
}

// BuscarPorID devolve a conta ou domain.ErrNotFound.
func (uc *ContaUseCase) BuscarPorID(ctx context.Context, id int64) (*entity.Conta, error) {
	conta, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if conta == nil {
		return nil, domain.ErrNotFound
	}
	return conta, nil
}

// Cadastrar registra uma conta nova. A situação é sempre forçada para PENDENTE,
// independente do que veio do cliente.
func (uc *ContaUseCase) Cadastrar(ctx context.Context, conta *entity.Conta) (*entity.Conta, error) {
	conta.Situacao = entity.SituacaoPendente
	if err := uc.repo.Save(ctx, conta); err != nil {
		return nil, err
	}
	return conta, nil
}

// Atualizar aplica uma atualização parcial: apenas os campos não nulos do DTO
// sobrescrevem o registro existente. As transições de pagamento/situação acontecem aqui.
func (uc *ContaUseCase) Atualizar(ctx context.Context, in *dto.ManterContaDTO) (*entity.Conta, error) {
	if in.ID == nil {
		return nil, domain.ErrInvalidInput
	}
	atual, err := uc.repo.FindByID(ctx, *in.ID)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, domain.ErrNotFound
	}
	if in.Descricao != nil {
		atual.Descricao = *in.Descricao
	}
	if in.Valor != nil {
		atual.Valor = *in.Valor
	}
	if in.DataPagamento != nil {
		atual.DataPagamento = in.DataPagamento
	}
	if in.DataVencimento != nil {
		atual.DataVencimento = in.DataVencimento
	}
	if in.Situacao != nil {
		atual.Situacao = *in.Situacao
	}
	if err := uc.repo.Save(ctx, atual); err != nil {
		return nil, err
	}
	return atual, nil
}

// BuscaPaginada lista contas com filtros opcionais de vencimento e descrição.
// Sem situação informada, o filtro assume PENDENTE (comportamento do listar).
func (uc *ContaUseCase) BuscaPaginada(ctx context.Context, dataVencimento *datebr.Date, descricao string, situacao entity.ContaSituacao, page, size int) ([]*entity.Conta, int, error) {
	if situacao == "" {
		situacao = entity.SituacaoPendente
	}
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}
	return uc.repo.FindByFilters(ctx, situacao, dataVencimento, descricao, size, page*size)
}

// TotalValorPago soma o valor das contas PAGO com pagamento dentro do período.
func (uc *ContaUseCase) TotalValorPago(ctx context.Context, inicio, fim datebr.Date) (decimal.Decimal, error) {
	return uc.repo.SumValorBySituacaoAndPeriodo(ctx, entity.SituacaoPago, inicio, fim)
}
