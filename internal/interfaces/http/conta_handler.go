package http

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/JoaoAlvarez/contas-api/internal/application/csvimport"
	"github.com/JoaoAlvarez/contas-api/internal/application/dto"
	"github.com/JoaoAlvarez/contas-api/internal/application/usecase"
	"github.com/JoaoAlvarez/contas-api/internal/domain"
	"github.com/JoaoAlvarez/contas-api/pkg/datebr"
	"github.com/JoaoAlvarez/contas-api/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

// ContaHandler trata as requisições HTTP de contas (protegido por Basic Auth).
type ContaHandler struct {
	uc       *usecase.ContaUseCase
	importer *csvimport.Importer
	log      *logger.Logger
}

// NewContaHandler constrói o handler.
func NewContaHandler(uc *usecase.ContaUseCase, importer *csvimport.Importer, log *logger.Logger) *ContaHandler {
	return &ContaHandler{uc: uc, importer: importer, log: log}
}

// Cadastrar godoc
// @Summary      Criar nova conta para pagar
// @Tags         conta
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ManterContaDTO  true  "Dados da conta"
// @Success      201   {object}  dto.ViewContaDTO
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/v1/conta [post]
func (h *ContaHandler) Cadastrar(c *fiber.Ctx) error {
	var in dto.ManterContaDTO
	if err := c.BodyParser(&in); err != nil {
		return respostaErro(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if in.ID != nil {
		return respostaErro(c, fiber.StatusBadRequest, "Uma nova conta não pode ter ID")
	}
	if violacoes := validarStruct(&in); violacoes != nil {
		return respostaValidacao(c, violacoes)
	}
	h.log.Debug().Str("descricao", *in.Descricao).Msg("nova conta para cadastrar")

	conta, err := h.uc.Cadastrar(c.Context(), dto.ManterToConta(&in))
	if err != nil {
		h.log.Error().Err(err).Msg("cadastrar conta")
		return respostaErro(c, fiber.StatusInternalServerError, "Erro interno no servidor")
	}
	c.Set(fiber.HeaderLocation, fmt.Sprintf("/api/v1/conta/%d", conta.ID))
	return c.Status(fiber.StatusCreated).JSON(dto.ContaToView(conta))
}

// Listar godoc
// @Summary      Listar contas com filtros e paginação
// @Tags         conta
// @Security     BasicAuth
// @Produce      json
// @Param        dataVencimento  query  string  false  "Vencimento exato (dd/MM/yyyy)"
// @Param        descricao       query  string  false  "Substring da descrição"
// @Param        page            query  int     false  "Página (0-indexada)"  default(0)
// @Param        size            query  int     false  "Tamanho da página"    default(20)
// @Success      200  {object}  dto.ListaContasDTO
// @Router       /api/v1/conta/listar [get]
func (h *ContaHandler) Listar(c *fiber.Ctx) error {
	var dataVencimento *datebr.Date
	if s := c.Query("dataVencimento"); s != "" {
		d, err := datebr.Parse(s)
		if err != nil {
			return respostaErro(c, fiber.StatusBadRequest, "dataVencimento fora do formato dd/MM/yyyy")
		}
		dataVencimento = &d
	}
	descricao := c.Query("descricao")
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 20)
	if size > 100 {
		size = 100
	}

	contas, total, err := h.uc.BuscaPaginada(c.Context(), dataVencimento, descricao, "", page, size)
	if err != nil {
		h.log.Error().Err(err).Msg("listar contas")
		return respostaErro(c, fiber.StatusInternalServerError, "Erro interno no servidor")
	}
	c.Set("X-Total-Count", strconv.Itoa(total))
	return c.JSON(dto.ListaContasDTO{
		Items: dto.ContasToView(contas),
		Page:  page,
		Size:  size,
		Total: total,
	})
}

// BuscarPorID godoc
// @Summary      Buscar conta por ID
// @Tags         conta
// @Security     BasicAuth
// @Produce      json
// @Param        id   path  int  true  "ID da conta"
// @Success      200  {object}  dto.ViewContaDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/conta/{id} [get]
func (h *ContaHandler) BuscarPorID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return respostaErro(c, fiber.StatusBadRequest, "id inválido")
	}
	conta, err := h.uc.BuscarPorID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respostaErro(c, fiber.StatusNotFound, "Conta não encontrada")
		}
		h.log.Error().Err(err).Msg("buscar conta por id")
		return respostaErro(c, fiber.StatusInternalServerError, "Erro interno no servidor")
	}
	return c.JSON(dto.ContaToView(conta))
}

// TotalValorPago godoc
// @Summary      Total pago no período
// @Tags         conta
// @Security     BasicAuth
// @Produce      json
// @Param        dataInicial  query  string  true  "Início (dd/MM/yyyy)"
// @Param        dataFinal    query  string  true  "Fim (dd/MM/yyyy)"
// @Success      200  {object}  dto.ViewValorTotalPeriodoDTO
// @Router       /api/v1/conta/total-valor-pago [get]
func (h *ContaHandler) TotalValorPago(c *fiber.Ctx) error {
	inicio, err := datebr.Parse(c.Query("dataInicial"))
	if err != nil {
		return respostaErro(c, fiber.StatusBadRequest, "dataInicial fora do formato dd/MM/yyyy")
	}
	fim, err := datebr.Parse(c.Query("dataFinal"))
	if err != nil {
		return respostaErro(c, fiber.StatusBadRequest, "dataFinal fora do formato dd/MM/yyyy")
	}
	total, err := h.uc.TotalValorPago(c.Context(), inicio, fim)
	if err != nil {
		h.log.Error().Err(err).Msg("total valor pago")
		return respostaErro(c, fiber.StatusInternalServerError, "Erro interno no servidor")
	}
	return c.JSON(dto.ViewValorTotalPeriodoDTO{
		DataInicial: inicio,
		DataFinal:   fim,
		ValorTotal:  total,
	})
}

// Atualizar godoc
// @Summary      Atualização parcial de uma conta
// @Tags         conta
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID da conta"
// @Param        body  body  dto.ManterContaDTO  true  "Campos a atualizar (só os não nulos sobrescrevem)"
// @Success      200   {object}  dto.ViewContaDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/conta/{id} [patch]
func (h *ContaHandler) Atualizar(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return respostaErro(c, fiber.StatusBadRequest, "id inválido")
	}
	var in dto.ManterContaDTO
	if err := c.BodyParser(&in); err != nil {
		return respostaErro(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if in.ID == nil {
		return respostaErro(c, fiber.StatusBadRequest, "ID Invalido")
	}
	if *in.ID != id {
		return respostaErro(c, fiber.StatusBadRequest, "Id da entidade não confere com o ID para atualizar")
	}
	h.log.Info().Int64("id", id).Msg("atualizar conta")

	conta, err := h.uc.Atualizar(c.Context(), &in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respostaErro(c, fiber.StatusBadRequest, "Entidade não encontrada")
		}
		h.log.Error().Err(err).Msg("atualizar conta")
		return respostaErro(c, fiber.StatusInternalServerError, "Erro interno no servidor")
	}
	return c.JSON(dto.ContaToView(conta))
}

// Importar godoc
// @Summary      Importar contas via CSV (multipart, campo "file")
// @Tags         conta
// @Security     BasicAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV com cabeçalho descricao,dataVencimento,dataPagamento,valor,situacao"
// @Success      200   {integer}  int
// @Failure      400   {object}   dto.ErrorResponse
// @Router       /api/v1/conta/import [post]
func (h *ContaHandler) Importar(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return respostaErro(c, fiber.StatusBadRequest, "Arquivo não enviado")
	}
	f, err := fh.Open()
	if err != nil {
		return respostaErro(c, fiber.StatusBadRequest, "Erro ao importar contas")
	}
	defer f.Close()
	conteudo, err := io.ReadAll(f)
	if err != nil {
		return respostaErro(c, fiber.StatusBadRequest, "Erro ao importar contas")
	}

	quantidade, err := h.importer.Importar(c.Context(), conteudo)
	if err != nil {
		var importErr *csvimport.ImportError
		if errors.As(err, &importErr) {
			return respostaErro(c, fiber.StatusBadRequest, importErr.Message)
		}
		h.log.Error().Err(err).Msg("falha na importação de contas")
		return respostaErro(c, fiber.StatusBadRequest, "Erro ao importar contas")
	}
	h.log.Info().Int("quantidade", quantidade).Msg("contas importadas")
	return c.JSON(quantidade)
}
