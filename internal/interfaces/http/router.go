package http

import (
	"github.com/JoaoAlvarez/contas-api/internal/application/csvimport"
	"github.com/JoaoAlvarez/contas-api/internal/application/usecase"
	"github.com/JoaoAlvarez/contas-api/internal/domain/repository"
	"github.com/JoaoAlvarez/contas-api/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	ContaUC     *usecase.ContaUseCase
	UsuarioUC   *usecase.UsuarioUseCase
	Importer    *csvimport.Importer
	UsuarioRepo repository.UsuarioRepository
	Log         *logger.Logger
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Registro de usuário (público)
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	api.Post("/usuario", usuarioHandler.Criar)

	// Contas (Basic Auth + autorização por role)
	conta := api.Group("/conta", BasicAuthMiddleware(deps.UsuarioRepo))
	contaHandler := NewContaHandler(deps.ContaUC, deps.Importer, deps.Log)
	conta.Post("/", RequirePermissao("conta_insert"), contaHandler.Cadastrar)
	conta.Post("/import", RequirePermissao("conta_insert"), contaHandler.Importar)
	conta.Get("/listar", RequirePermissao("conta_select"), contaHandler.Listar)
	conta.Get("/total-valor-pago", RequirePermissao("conta_select"), contaHandler.TotalValorPago)
	conta.Get("/:id", RequirePermissao("conta_select"), contaHandler.BuscarPorID)
	conta.Patch("/:id", RequirePermissao("conta_update"), contaHandler.Atualizar)
}
