package http

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/JoaoAlvarez/contas-api/internal/application/dto"
	"github.com/JoaoAlvarez/contas-api/internal/domain/entity"
	"github.com/JoaoAlvarez/contas-api/internal/domain/repository"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

const (
	prefixBasic    = "Basic "
	prefixRole     = "ROLE_"
	localPrincipal = "principal"
)

// Principal identidade autenticada da requisição com o conjunto de permissões
// derivado das roles do usuário (cada nome prefixado com ROLE_).
type Principal struct {
	Username   string
	Permissoes []string
}

// NewPrincipal projeta o usuário autenticado no principal da requisição.
func NewPrincipal(u *entity.Usuario) *Principal {
	perms := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		perms = append(perms, prefixRole+role.Name)
	}
	return &Principal{Username: u.Username, Permissoes: perms}
}

// TemPermissao verifica se o principal carrega a role (sem o prefixo ROLE_).
func (p *Principal) TemPermissao(role string) bool {
	for _, perm := range p.Permissoes {
		if perm == prefixRole+role {
			return true
		}
	}
	return false
}

// BasicAuthMiddleware filtro de autenticação HTTP Basic.
//
// Sem header Authorization, ou com esquema diferente de Basic, a requisição
// segue não autenticada (a autorização por rota decide o que fazer). Com o
// header presente: decodifica as credenciais, carrega o usuário com roles num
// único fetch e confere o password contra o hash bcrypt. Cada falha encerra a
// requisição com 401 e um corpo {"message": ...}; no sucesso o principal fica
// disponível via GetPrincipal.
func BasicAuthMiddleware(usuarios repository.UsuarioRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, prefixBasic) {
			return c.Next()
		}

		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, prefixBasic))
		if err != nil {
			return naoAutorizado(c, "Credenciais inválidas")
		}
		username, password, ok := strings.Cut(string(raw), ":")
		if !ok {
			// payload sem ':' não é um par usuário/senha: falha fechada
			return naoAutorizado(c, "Credenciais inválidas")
		}

		usuario, err := usuarios.FindByUsernameComRoles(c.Context(), username)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.MensagemDTO{Message: "Erro ao autenticar"})
		}
		if usuario == nil {
			return naoAutorizado(c, "Usuário nao existe")
		}

		if bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(password)) != nil {
			return naoAutorizado(c, "Senha não confere")
		}

		c.Locals(localPrincipal, NewPrincipal(usuario))
		return c.Next()
	}
}

func naoAutorizado(c *fiber.Ctx, mensagem string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.MensagemDTO{Message: mensagem})
}

// GetPrincipal devolve o principal da requisição, ou nil se não autenticada.
func GetPrincipal(c *fiber.Ctx) *Principal {
	p, _ := c.Locals(localPrincipal).(*Principal)
	return p
}

// RequirePermissao autorização explícita por rota: 401 sem principal,
// 403 quando o principal não carrega a role exigida.
func RequirePermissao(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MensagemDTO{Message: "Autenticação requerida"})
		}
		if !p.TemPermissao(role) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Status:    fiber.StatusForbidden,
				Message:   "Acesso negado",
				Timestamp: time.Now().UnixMilli(),
			})
		}
		return c.Next()
	}
}
