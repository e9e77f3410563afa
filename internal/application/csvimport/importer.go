// Package csvimport implementa a importação em lote de contas via CSV.
//
// O arquivo tem cabeçalho com as colunas descricao, dataVencimento,
// dataPagamento, valor e situacao, casadas por nome (a ordem não importa).
// A validação acontece inteiramente em memória: qualquer linha inválida
// aborta a importação antes de tocar o banco.
package csvimport

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/JoaoAlvarez/contas-api/internal/domain/entity"
	"github.com/JoaoAlvarez/contas-api/internal/domain/repository"
	"github.com/JoaoAlvarez/contas-api/pkg/datebr"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// ImportError erro de importação com referência à linha de dados (1-indexada,
// sem contar o cabeçalho) embutida na mensagem.
type ImportError struct {
	Message string
}

func (e *ImportError) Error() string {
	return e.Message
}

func errNaLinha(msg string, linha int) *ImportError {
	return &ImportError{Message: fmt.Sprintf("%s na linha %d", msg, linha)}
}

// contaCsv linha transiente do CSV; os campos textuais são convertidos
// (e validados) um a um ao montar a Conta.
type contaCsv struct {
	Descricao      string `csv:"descricao"`
	DataVencimento string `csv:"dataVencimento"`
	DataPagamento  string `csv:"dataPagamento"`
	Valor          string `csv:"valor"`
	Situacao       string `csv:"situacao"`
}

// Importer caso de uso de importação em lote.
type Importer struct {
	repo repository.ContaRepository
}

// NewImporter constrói o importador sobre o porto de persistência.
func NewImporter(repo repository.ContaRepository) *Importer {
	return &Importer{repo: repo}
}

// Importar valida o CSV inteiro, persiste as contas num único SaveAll e devolve
// quantos registros distintos foram salvos. Linhas integralmente iguais colapsam
// num registro só (dedup deliberado, vide conjunto em parse). Em erro, nada é persistido.
func (i *Importer) Importar(ctx context.Context, file []byte) (int, error) {
	contas, err := parse(file)
	if err != nil {
		return 0, err
	}
	if err := i.repo.SaveAll(ctx, contas); err != nil {
		return 0, err
	}
	return len(contas), nil
}

func parse(file []byte) ([]*entity.Conta, error) {
	r := csv.NewReader(bytes.NewReader(file))
	r.TrimLeadingSpace = true

	var linhas []contaCsv
	if err := gocsv.UnmarshalCSV(r, &linhas); err != nil {
		return nil, fmt.Errorf("ler csv: %w", err)
	}

	var contas []*entity.Conta
	vistos := make(map[string]struct{}, len(linhas))

	for idx, linha := range linhas {
		n := idx + 1 // 1-indexado entre as linhas de dados

		valorTexto := strings.TrimSpace(linha.Valor)
		if valorTexto == "" {
			return nil, errNaLinha("Valor deve ser preenchido", n)
		}
		valor, err := decimal.NewFromString(valorTexto)
		if err != nil {
			return nil, fmt.Errorf("valor inválido na linha %d: %w", n, err)
		}

		dataVencimento, err := parseData(linha.DataVencimento)
		if err != nil {
			return nil, errNaLinha("Formato de data Invalida", n)
		}
		dataPagamento, err := parseData(linha.DataPagamento)
		if err != nil {
			return nil, errNaLinha("Formato de data Invalida", n)
		}

		situacao := entity.SituacaoPendente
		if s := strings.TrimSpace(linha.Situacao); s != "" {
			var ok bool
			situacao, ok = entity.ParseSituacao(s)
			if !ok {
				return nil, errNaLinha("Situacao invalida", n)
			}
		}

		conta := &entity.Conta{
			DataVencimento: dataVencimento,
			DataPagamento:  dataPagamento,
			Valor:          valor,
			Descricao:      strings.TrimSpace(linha.Descricao),
			Situacao:       situacao,
		}

		// Conjunto chaveado pela igualdade integral dos campos: linhas repetidas
		// colapsam num registro só. A chave usa Valor.String(), que preserva a
		// escala — "100" e "100.00" contam como registros distintos.
		chave := chaveConta(conta)
		if _, repetida := vistos[chave]; repetida {
			continue
		}
		vistos[chave] = struct{}{}
		contas = append(contas, conta)
	}
	return contas, nil
}

// parseData aceita somente dd/MM/yyyy; campo em branco vira data ausente, não erro.
func parseData(s string) (*datebr.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := datebr.Parse(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func chaveConta(c *entity.Conta) string {
	return strings.Join([]string{
		c.Descricao,
		formataData(c.DataVencimento),
		formataData(c.DataPagamento),
		c.Valor.String(),
		string(c.Situacao),
	}, "|")
}

func formataData(d *datebr.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}
