package dto

import (
	"github.com/JoaoAlvarez/contas-api/internal/domain/entity"
	"github.com/JoaoAlvarez/contas-api/pkg/datebr"
	"github.com/shopspring/decimal"
)

// ManterContaDTO body de criação (POST) e atualização parcial (PATCH) de conta.
// Campos são ponteiros: no PATCH, só o que vier preenchido sobrescreve o registro.
// A validação de obrigatórios se aplica apenas na criação.
type ManterContaDTO struct {
	ID             *int64                `json:"id"`
	DataVencimento *datebr.Date          `json:"dataVencimento" validate:"required"`
	DataPagamento  *datebr.Date          `json:"dataPagamento"`
	Descricao      *string               `json:"descricao" validate:"required"`
	Valor          *decimal.Decimal      `json:"valor" validate:"required"`
	Situacao       *entity.ContaSituacao `json:"situacao"`
}

// ViewContaDTO representação de saída de uma conta. Datas em dd/MM/yyyy.
type ViewContaDTO struct {
	ID             int64                `json:"id"`
	DataVencimento *datebr.Date         `json:"dataVencimento"`
	DataPagamento  *datebr.Date         `json:"dataPagamento"`
	Valor          decimal.Decimal      `json:"valor"`
	Descricao      string               `json:"descricao"`
	Situacao       entity.ContaSituacao `json:"situacao"`
}

// ViewValorTotalPeriodoDTO saída do total pago num período.
type ViewValorTotalPeriodoDTO struct {
	DataInicial datebr.Date     `json:"dataInicial"`
	DataFinal   datebr.Date     `json:"dataFinal"`
	ValorTotal  decimal.Decimal `json:"valorTotal"`
}

// ListaContasDTO página de contas com metadados.
type ListaContasDTO struct {
	Items []ViewContaDTO `json:"items"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
	Total int            `json:"total"`
}
