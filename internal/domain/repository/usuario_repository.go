package repository

import (
	"context"

	"github.com/JoaoAlvarez/contas-api/internal/domain/entity"
)

// UsuarioRepository define o porto de persistência para Usuario.
type UsuarioRepository interface {
	// Create persiste o usuário e os vínculos de role numa única transação.
	// Devolve domain.ErrUsuarioJaExiste em username duplicado e
	// domain.ErrRoleInvalida quando alguma role não existe.
	Create(ctx context.Context, usuario *entity.Usuario) error
	// FindByUsername devolve (nil, nil) quando não encontrado. Não carrega roles.
	FindByUsername(ctx context.Context, username string) (*entity.Usuario, error)
	// FindByUsernameComRoles carrega o usuário com as roles num único fetch.
	FindByUsernameComRoles(ctx context.Context, username string) (*entity.Usuario, error)
}
