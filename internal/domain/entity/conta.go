package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/JoaoAlvarez/contas-api/pkg/datebr"
	"github.com/shopspring/decimal"
)

// ContaSituacao estado do ciclo de vida de uma conta.
type ContaSituacao string

const (
	SituacaoPendente  ContaSituacao = "PENDENTE"
	SituacaoPago      ContaSituacao = "PAGO"
	SituacaoVencida   ContaSituacao = "VENCIDA"
	SituacaoCancelada ContaSituacao = "CANCELADA"
)

// Situacoes lista os valores válidos do enum.
var Situacoes = []ContaSituacao{SituacaoPendente, SituacaoPago, SituacaoVencida, SituacaoCancelada}

// ParseSituacao resolve o texto para o enum, sem diferenciar maiúsculas de minúsculas.
// Devolve false quando o valor não corresponde a nenhuma situação conhecida.
func ParseSituacao(s string) (ContaSituacao, bool) {
	for _, sit := range Situacoes {
		if strings.EqualFold(s, string(sit)) {
			return sit, true
		}
	}
	return "", false
}

// UnmarshalJSON resolve o texto contra o enum via ParseSituacao: valor
// desconhecido é erro de binding, nunca chega ao domínio.
func (s *ContaSituacao) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	sit, ok := ParseSituacao(raw)
	if !ok {
		return fmt.Errorf("situacao %q desconhecida", raw)
	}
	*s = sit
	return nil
}

// Conta representa uma conta a pagar/receber.
// Invariante: toda conta nova nasce PENDENTE, independente do que o cliente enviar.
type Conta struct {
	ID             int64
	DataVencimento *datebr.Date
	DataPagamento  *datebr.Date // nulo até o pagamento
	Valor          decimal.Decimal
	Descricao      string
	Situacao       ContaSituacao
}
