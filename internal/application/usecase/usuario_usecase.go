package usecase

import (
	"context"

	"github.com/JoaoAlvarez/contas-api/internal/application/dto"
	"github.com/JoaoAlvarez/contas-api/internal/domain"
	"github.com/JoaoAlvarez/contas-api/internal/domain/entity"
	"github.com/JoaoAlvarez/contas-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UsuarioUseCase registro de usuários.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase constrói o caso de uso com o porto de persistência.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// Criar registra um usuário novo: hasheia o password com bcrypt e persiste com as roles.
// Username já existente devolve domain.ErrUsuarioJaExiste e nada é criado.
func (uc *UsuarioUseCase) Criar(ctx context.Context, in *dto.NovoUsuarioDTO) error {
	existente, err := uc.repo.FindByUsername(ctx, *in.Username)
	if err != nil {
		return err
	}
	if existente != nil {
		return domain.ErrUsuarioJaExiste
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	roles := make([]entity.Role, 0, len(in.Roles))
	for _, nome := range in.Roles {
		roles = append(roles, entity.Role{Name: nome})
	}
	usuario := &entity.Usuario{
		Username: *in.Username,
		Password: string(hash),
		Roles:    roles,
	}
	return uc.repo.Create(ctx, usuario)
}
