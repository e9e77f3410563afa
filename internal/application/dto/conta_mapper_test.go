package dto_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoaoAlvarez/contas-api/internal/application/dto"
	"github.com/JoaoAlvarez/contas-api/internal/domain/entity"
	"github.com/JoaoAlvarez/contas-api/pkg/datebr"
)

// Conta → view → Conta não pode perder id, datas, valor exato, descrição nem situação.
func TestContaView_RoundTrip(t *testing.T) {
	venc := datebr.New(2023, time.June, 1)
	pag := datebr.New(2023, time.June, 15)
	valor, err := decimal.NewFromString("1234.56")
	require.NoError(t, err)

	orig := &entity.Conta{
		ID:             42,
		DataVencimento: &venc,
		DataPagamento:  &pag,
		Valor:          valor,
		Descricao:      "Conta de luz",
		Situacao:       entity.SituacaoPago,
	}

	volta := dto.ViewToConta(dto.ContaToView(orig))

	assert.Equal(t, orig.ID, volta.ID)
	assert.True(t, orig.DataVencimento.Equal(*volta.DataVencimento))
	assert.True(t, orig.DataPagamento.Equal(*volta.DataPagamento))
	assert.True(t, orig.Valor.Equal(volta.Valor), "valor deve ser preservado exatamente")
	assert.Equal(t, orig.Descricao, volta.Descricao)
	assert.Equal(t, orig.Situacao, volta.Situacao)
}

func TestContaToView_PagamentoNulo(t *testing.T) {
	conta := &entity.Conta{ID: 1, Valor: decimal.NewFromInt(10), Situacao: entity.SituacaoPendente}
	view := dto.ContaToView(conta)
	assert.Nil(t, view.DataPagamento)
	assert.Nil(t, view.DataVencimento)
}

func TestManterToConta_CamposNulosViramZeroValue(t *testing.T) {
	desc := "Aluguel"
	in := &dto.ManterContaDTO{Descricao: &desc}
	conta := dto.ManterToConta(in)

	assert.Equal(t, int64(0), conta.ID)
	assert.Equal(t, "Aluguel", conta.Descricao)
	assert.True(t, conta.Valor.IsZero())
	assert.Empty(t, conta.Situacao)
}

func TestContasToView_NuncaNil(t *testing.T) {
	assert.NotNil(t, dto.ContasToView(nil))
	assert.Len(t, dto.ContasToView(nil), 0)
}
