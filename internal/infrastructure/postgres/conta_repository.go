package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JoaoAlvarez/contas-api/internal/domain/entity"
	"github.com/JoaoAlvarez/contas-api/internal/domain/repository"
	"github.com/JoaoAlvarez/contas-api/pkg/datebr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var _ repository.ContaRepository = (*ContaRepo)(nil)

// ContaRepo implementação do porto ContaRepository sobre PostgreSQL.
type ContaRepo struct {
	pool *pgxpool.Pool
}

// NewContaRepository constrói o adaptador de persistência de contas.
func NewContaRepository(pool *pgxpool.Pool) *ContaRepo {
	return &ContaRepo{pool: pool}
}

// FindByID obtém uma conta por ID. Devolve (nil, nil) quando não existe.
func (r *ContaRepo) FindByID(ctx context.Context, id int64) (*entity.Conta, error) {
	query := `
		SELECT id, data_vencimento, data_pagamento, valor, descricao, situacao
		FROM contas WHERE id = $1`
	conta, err := scanConta(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar conta por id: %w", err)
	}
	return conta, nil
}

// Save insere quando ID é zero (preenchendo o ID da sequência) e atualiza caso contrário.
func (r *ContaRepo) Save(ctx context.Context, conta *entity.Conta) error {
	if conta.ID == 0 {
		query := `
			INSERT INTO contas (data_vencimento, data_pagamento, valor, descricao, situacao)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`
		err := r.pool.QueryRow(ctx, query,
			datebr.TimePtr(conta.DataVencimento), datebr.TimePtr(conta.DataPagamento),
			conta.Valor, conta.Descricao, string(conta.Situacao),
		).Scan(&conta.ID)
		if err != nil {
			return fmt.Errorf("inserir conta: %w", err)
		}
		return nil
	}
	query := `
		UPDATE contas
		SET data_vencimento = $2, data_pagamento = $3, valor = $4, descricao = $5, situacao = $6
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, conta.ID,
		datebr.TimePtr(conta.DataVencimento), datebr.TimePtr(conta.DataPagamento),
		conta.Valor, conta.Descricao, string(conta.Situacao),
	)
	if err != nil {
		return fmt.Errorf("atualizar conta: %w", err)
	}
	return nil
}

// SaveAll insere o lote numa única transação: ou todas as contas entram, ou nenhuma.
func (r *ContaRepo) SaveAll(ctx context.Context, contas []*entity.Conta) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO contas (data_vencimento, data_pagamento, valor, descricao, situacao)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	for _, conta := range contas {
		err := tx.QueryRow(ctx, query,
			datebr.TimePtr(conta.DataVencimento), datebr.TimePtr(conta.DataPagamento),
			conta.Valor, conta.Descricao, string(conta.Situacao),
		).Scan(&conta.ID)
		if err != nil {
			return fmt.Errorf("inserir conta do lote: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// FindByFilters filtra por situação e, opcionalmente, vencimento exato e
// substring da descrição (LIKE %descricao%). Devolve a página e o total.
func (r *ContaRepo) FindByFilters(ctx context.Context, situacao entity.ContaSituacao, dataVencimento *datebr.Date, descricao string, limit, offset int) ([]*entity.Conta, int, error) {
	var desc *string
	if descricao != "" {
		desc = &descricao
	}
	venc := datebr.TimePtr(dataVencimento)

	where := `
		WHERE situacao = $1
		AND ($2::text IS NULL OR descricao LIKE '%' || $2 || '%')
		AND ($3::date IS NULL OR data_vencimento = $3)`

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contas`+where, string(situacao), desc, venc).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("contar contas: %w", err)
	}

	query := `
		SELECT id, data_vencimento, data_pagamento, valor, descricao, situacao
		FROM contas` + where + `
		ORDER BY id
		LIMIT $4 OFFSET $5`
	rows, err := r.pool.Query(ctx, query, string(situacao), desc, venc, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listar contas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Conta
	for rows.Next() {
		conta, err := scanConta(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan conta: %w", err)
		}
		list = append(list, conta)
	}
	return list, total, rows.Err()
}

// SumValorBySituacaoAndPeriodo soma o valor das contas na situação com
// data_pagamento dentro de [inicio, fim]. COALESCE garante zero sem linhas.
func (r *ContaRepo) SumValorBySituacaoAndPeriodo(ctx context.Context, situacao entity.ContaSituacao, inicio, fim datebr.Date) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(valor), 0)
		FROM contas
		WHERE situacao = $1 AND data_pagamento BETWEEN $2 AND $3`
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, query, string(situacao), inicio.Time, fim.Time).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("somar valor por período: %w", err)
	}
	return total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConta(row rowScanner) (*entity.Conta, error) {
	var (
		c         entity.Conta
		venc, pag *time.Time
		situacao  string
	)
	if err := row.Scan(&c.ID, &venc, &pag, &c.Valor, &c.Descricao, &situacao); err != nil {
		return nil, err
	}
	c.DataVencimento = datebr.FromTime(venc)
	c.DataPagamento = datebr.FromTime(pag)
	c.Situacao = entity.ContaSituacao(situacao)
	return &c, nil
}
