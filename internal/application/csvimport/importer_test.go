package csvimport_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoaoAlvarez/contas-api/internal/application/csvimport"
	"github.com/JoaoAlvarez/contas-api/internal/domain/entity"
	"github.com/JoaoAlvarez/contas-api/pkg/datebr"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake do ContaRepository: captura o SaveAll para inspecionar o lote persistido.
// ──────────────────────────────────────────────────────────────────────────────

type contaRepoFake struct {
	salvas   []*entity.Conta
	chamadas int
	falha    error
}

func (f *contaRepoFake) FindByID(ctx context.Context, id int64) (*entity.Conta, error) {
	return nil, nil
}

func (f *contaRepoFake) Save(ctx context.Context, conta *entity.Conta) error {
	return nil
}

func (f *contaRepoFake) SaveAll(ctx context.Context, contas []*entity.Conta) error {
	f.chamadas++
	if f.falha != nil {
		return f.falha
	}
	for i, c := range contas {
		c.ID = int64(i + 1)
	}
	f.salvas = append(f.salvas, contas...)
	return nil
}

func (f *contaRepoFake) FindByFilters(ctx context.Context, situacao entity.ContaSituacao, dataVencimento *datebr.Date, descricao string, limit, offset int) ([]*entity.Conta, int, error) {
	return nil, 0, nil
}

func (f *contaRepoFake) SumValorBySituacaoAndPeriodo(ctx context.Context, situacao entity.ContaSituacao, inicio, fim datebr.Date) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func novoImporter() (*csvimport.Importer, *contaRepoFake) {
	repo := &contaRepoFake{}
	return csvimport.NewImporter(repo), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário de referência: uma linha válida com pagamento em branco.
// ──────────────────────────────────────────────────────────────────────────────

func TestImportar_CenarioReferencia(t *testing.T) {
	imp, repo := novoImporter()
	csv := "descricao,valor,dataVencimento,dataPagamento,situacao\nConta 1,100,01/06/2023,,PENDENTE\n"

	qtd, err := imp.Importar(context.Background(), []byte(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, qtd)

	require.Len(t, repo.salvas, 1)
	conta := repo.salvas[0]
	assert.Equal(t, "Conta 1", conta.Descricao)
	require.NotNil(t, conta.DataVencimento)
	assert.Equal(t, 2023, conta.DataVencimento.Year())
	assert.Equal(t, time.June, conta.DataVencimento.Month())
	assert.Equal(t, 1, conta.DataVencimento.Day())
	assert.Nil(t, conta.DataPagamento, "pagamento em branco deve ficar nulo")
	assert.True(t, decimal.NewFromInt(100).Equal(conta.Valor))
	assert.Equal(t, entity.SituacaoPendente, conta.Situacao)
}

// As colunas são casadas pelo nome do cabeçalho: a ordem não importa.
func TestImportar_OrdemDasColunasLivre(t *testing.T) {
	imp, repo := novoImporter()
	csv := "situacao,valor,descricao,dataPagamento,dataVencimento\nPAGO,55.50,Internet,10/05/2023,01/05/2023\n"

	qtd, err := imp.Importar(context.Background(), []byte(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, qtd)
	assert.Equal(t, "Internet", repo.salvas[0].Descricao)
	assert.Equal(t, entity.SituacaoPago, repo.salvas[0].Situacao)
	require.NotNil(t, repo.salvas[0].DataPagamento)
	assert.Equal(t, "10/05/2023", repo.salvas[0].DataPagamento.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Validação linha a linha (fail-fast, nada persiste).
// ──────────────────────────────────────────────────────────────────────────────

func TestImportar_ValorEmBranco(t *testing.T) {
	imp, repo := novoImporter()
	csv := "descricao,valor,dataVencimento,dataPagamento,situacao\n" +
		"Conta 1,10,01/06/2023,,\n" +
		"Conta 2,,02/06/2023,,\n"

	_, err := imp.Importar(context.Background(), []byte(csv))
	var importErr *csvimport.ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, "Valor deve ser preenchido na linha 2", importErr.Message)
	assert.Zero(t, repo.chamadas, "nada deve ser persistido quando uma linha falha")
}

func TestImportar_DataForaDoFormato(t *testing.T) {
	imp, repo := novoImporter()
	csv := "descricao,valor,dataVencimento,dataPagamento,situacao\n" +
		"Conta 1,10,2023-06-01,,\n"

	_, err := imp.Importar(context.Background(), []byte(csv))
	var importErr *csvimport.ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, "Formato de data Invalida na linha 1", importErr.Message)
	assert.Zero(t, repo.chamadas)
}

func TestImportar_DataPagamentoInvalidaTambemFalha(t *testing.T) {
	imp, _ := novoImporter()
	csv := "descricao,valor,dataVencimento,dataPagamento,situacao\n" +
		"Conta 1,10,01/06/2023,31/02/2023,\n"

	_, err := imp.Importar(context.Background(), []byte(csv))
	var importErr *csvimport.ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Contains(t, importErr.Message, "Formato de data Invalida na linha 1")
}

func TestImportar_SituacaoDesconhecida(t *testing.T) {
	imp, repo := novoImporter()
	csv := "descricao,valor,dataVencimento,dataPagamento,situacao\n" +
		"Conta 1,10,01/06/2023,,EM_ABERTO\n"

	_, err := imp.Importar(context.Background(), []byte(csv))
	var importErr *csvimport.ImportError
	require.ErrorAs(t, err, &importErr, "situação fora do enum deve virar erro de importação tipado")
	assert.Equal(t, "Situacao invalida na linha 1", importErr.Message)
	assert.Zero(t, repo.chamadas)
}

func TestImportar_SituacaoCaseInsensitiveEDefault(t *testing.T) {
	imp, repo := novoImporter()
	csv := "descricao,valor,dataVencimento,dataPagamento,situacao\n" +
		"Conta 1,10,01/06/2023,,pago\n" +
		"Conta 2,20,01/06/2023,,\n"

	qtd, err := imp.Importar(context.Background(), []byte(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, qtd)
	assert.Equal(t, entity.SituacaoPago, repo.salvas[0].Situacao)
	assert.Equal(t, entity.SituacaoPendente, repo.salvas[1].Situacao, "situação em branco assume PENDENTE")
}

// ──────────────────────────────────────────────────────────────────────────────
// Dedup: linhas integralmente iguais colapsam num registro só.
// ──────────────────────────────────────────────────────────────────────────────

func TestImportar_LinhasIdenticasColapsam(t *testing.T) {
	imp, repo := novoImporter()
	csv := "descricao,valor,dataVencimento,dataPagamento,situacao\n" +
		"Conta 1,100,01/06/2023,,PENDENTE\n" +
		"Conta 1,100,01/06/2023,,PENDENTE\n"

	qtd, err := imp.Importar(context.Background(), []byte(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, qtd, "linhas repetidas devem contar um registro só")
	assert.Len(t, repo.salvas, 1)
}

func TestImportar_DescricaoDiferenteNaoColapsa(t *testing.T) {
	imp, repo := novoImporter()
	csv := "descricao,valor,dataVencimento,dataPagamento,situacao\n" +
		"Conta 1,100,01/06/2023,,PENDENTE\n" +
		"Conta 2,100,01/06/2023,,PENDENTE\n"

	qtd, err := imp.Importar(context.Background(), []byte(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, qtd)
	assert.Len(t, repo.salvas, 2)
}

// A igualdade do valor é sensível à escala, como BigDecimal.equals:
// "100" e "100.00" são registros distintos.
func TestImportar_EscalaDoValorDistingueLinhas(t *testing.T) {
	imp, _ := novoImporter()
	csv := "descricao,valor,dataVencimento,dataPagamento,situacao\n" +
		"Conta 1,100,01/06/2023,,PENDENTE\n" +
		"Conta 1,100.00,01/06/2023,,PENDENTE\n"

	qtd, err := imp.Importar(context.Background(), []byte(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, qtd)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tolerância de formato do arquivo.
// ──────────────────────────────────────────────────────────────────────────────

func TestImportar_LinhasEmBrancoIgnoradas(t *testing.T) {
	imp, _ := novoImporter()
	csv := "descricao,valor,dataVencimento,dataPagamento,situacao\n" +
		"\n" +
		"Conta 1,10,01/06/2023,,\n" +
		"\n" +
		"Conta 2,20,02/06/2023,,\n"

	qtd, err := imp.Importar(context.Background(), []byte(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, qtd)
}

func TestImportar_EspacosAEsquerdaSaoAparados(t *testing.T) {
	imp, repo := novoImporter()
	csv := "descricao,valor,dataVencimento,dataPagamento,situacao\n" +
		"  Conta 1,  10,  01/06/2023,,\n"

	qtd, err := imp.Importar(context.Background(), []byte(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, qtd)
	assert.Equal(t, "Conta 1", repo.salvas[0].Descricao)
}

// A numeração do erro conta apenas linhas de dados: linhas em branco não deslocam o índice.
func TestImportar_NumeracaoIgnoraLinhasEmBranco(t *testing.T) {
	imp, _ := novoImporter()
	csv := "descricao,valor,dataVencimento,dataPagamento,situacao\n" +
		"Conta 1,10,01/06/2023,,\n" +
		"\n" +
		"Conta 2,,02/06/2023,,\n"

	_, err := imp.Importar(context.Background(), []byte(csv))
	var importErr *csvimport.ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, "Valor deve ser preenchido na linha 2", importErr.Message)
}

func TestImportar_ErroDoRepositorioPropaga(t *testing.T) {
	repo := &contaRepoFake{falha: errors.New("banco fora do ar")}
	imp := csvimport.NewImporter(repo)
	csv := "descricao,valor,dataVencimento,dataPagamento,situacao\nConta 1,10,01/06/2023,,\n"

	_, err := imp.Importar(context.Background(), []byte(csv))
	require.Error(t, err)
	var importErr *csvimport.ImportError
	assert.False(t, errors.As(err, &importErr), "falha de persistência não é erro de importação")
}
