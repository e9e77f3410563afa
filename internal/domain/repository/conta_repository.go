package repository

import (
	"context"

	"github.com/JoaoAlvarez/contas-api/internal/domain/entity"
	"github.com/JoaoAlvarez/contas-api/pkg/datebr"
	"github.com/shopspring/decimal"
)

// ContaRepository define o porto de persistência para Conta (DIP).
type ContaRepository interface {
	// FindByID devolve (nil, nil) quando a conta não existe.
	FindByID(ctx context.Context, id int64) (*entity.Conta, error)
	// Save insere quando ID é zero (preenchendo o ID gerado) e atualiza caso contrário.
	Save(ctx context.Context, conta *entity.Conta) error
	// SaveAll persiste o lote inteiro numa única transação: ou tudo, ou nada.
	SaveAll(ctx context.Context, contas []*entity.Conta) error
	// FindByFilters filtra por situação (obrigatória), vencimento exato (opcional)
	// e substring da descrição (opcional). Devolve a página e o total de registros.
	FindByFilters(ctx context.Context, situacao entity.ContaSituacao, dataVencimento *datebr.Date, descricao string, limit, offset int) ([]*entity.Conta, int, error)
	// SumValorBySituacaoAndPeriodo soma o valor das contas na situação dada com
	// data de pagamento dentro do período [inicio, fim]. Sem linhas, devolve zero.
	SumValorBySituacaoAndPeriodo(ctx context.Context, situacao entity.ContaSituacao, inicio, fim datebr.Date) (decimal.Decimal, error)
}
