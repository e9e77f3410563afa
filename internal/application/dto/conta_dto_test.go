package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoaoAlvarez/contas-api/internal/application/dto"
	"github.com/JoaoAlvarez/contas-api/internal/domain/entity"
)

// Situação fora do enum falha já no binding do body: nada invade o merge parcial.
func TestManterContaDTO_SituacaoDesconhecidaFalhaNoBinding(t *testing.T) {
	var in dto.ManterContaDTO
	err := json.Unmarshal([]byte(`{"id":1,"situacao":"FOO"}`), &in)
	assert.Error(t, err)
}

func TestManterContaDTO_SituacaoValidaNormalizada(t *testing.T) {
	var in dto.ManterContaDTO
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"situacao":"pago"}`), &in))
	require.NotNil(t, in.Situacao)
	assert.Equal(t, entity.SituacaoPago, *in.Situacao)
}

// Data em branco não é data ausente: o binding falha em vez de produzir 01/01/0001.
func TestManterContaDTO_DataVaziaFalhaNoBinding(t *testing.T) {
	var in dto.ManterContaDTO
	err := json.Unmarshal([]byte(`{"id":1,"dataPagamento":""}`), &in)
	assert.Error(t, err)
}

func TestManterContaDTO_DataNullFicaAusente(t *testing.T) {
	var in dto.ManterContaDTO
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"dataPagamento":null}`), &in))
	assert.Nil(t, in.DataPagamento)
}
