package http

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/JoaoAlvarez/contas-api/internal/application/dto"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

// Mensagens por campo, no lugar das genéricas do validator.
var mensagensValidacao = map[string]string{
	"ManterContaDTO.dataVencimento": "Campo data de vencimento é obrigatorio",
	"ManterContaDTO.descricao":      "Campo descricao é obrigatorio",
	"ManterContaDTO.valor":          "Campo valor é obrigatorio",
	"NovoUsuarioDTO.username":       "Preenchimento obrigatório",
	"NovoUsuarioDTO.password":       "Preenchimento obrigatório",
	"NovoUsuarioDTO.roles":          "Inseira ao menos uma role para o usuário",
}

func newValidator() *validator.Validate {
	v := validator.New()
	// Reporta violações pelo nome JSON do campo, não pelo nome Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validarStruct valida o DTO e devolve as violações campo→mensagem.
func validarStruct(s interface{}) []dto.FieldMessage {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var violacoes []dto.FieldMessage
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return []dto.FieldMessage{{FieldName: "", Message: err.Error()}}
	}
	for _, fe := range errs {
		// Namespace usa o nome do tipo raiz e o nome JSON do campo
		// (por causa do RegisterTagNameFunc): "ManterContaDTO.valor".
		msg, ok := mensagensValidacao[fe.Namespace()]
		if !ok {
			msg = "Preenchimento obrigatório"
		}
		violacoes = append(violacoes, dto.FieldMessage{FieldName: fe.Field(), Message: msg})
	}
	return violacoes
}

// respostaValidacao monta o 400 agregado no formato campo→mensagem.
func respostaValidacao(c *fiber.Ctx, violacoes []dto.FieldMessage) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
		Status:    fiber.StatusBadRequest,
		Message:   "Erro de validação",
		Timestamp: time.Now().UnixMilli(),
		Errors:    violacoes,
	})
}

// respostaErro monta um erro padrão com timestamp.
func respostaErro(c *fiber.Ctx, status int, mensagem string) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Status:    status,
		Message:   mensagem,
		Timestamp: time.Now().UnixMilli(),
	})
}
