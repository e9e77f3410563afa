package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/JoaoAlvarez/contas-api/internal/domain"
	"github.com/JoaoAlvarez/contas-api/internal/domain/entity"
	"github.com/JoaoAlvarez/contas-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação do porto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository constrói o adaptador de persistência de usuários.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

// Create persiste o usuário e os vínculos com roles numa única transação.
// As roles são resolvidas pelo nome; nome inexistente devolve domain.ErrRoleInvalida.
func (r *UsuarioRepo) Create(ctx context.Context, usuario *entity.Usuario) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx,
		`INSERT INTO usuarios (username, password) VALUES ($1, $2) RETURNING id`,
		usuario.Username, usuario.Password,
	).Scan(&usuario.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsuarioJaExiste
		}
		return fmt.Errorf("inserir usuário: %w", err)
	}

	for i, role := range usuario.Roles {
		var roleID int64
		err := tx.QueryRow(ctx, `SELECT id FROM roles WHERE name = $1`, role.Name).Scan(&roleID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRoleInvalida
			}
			return fmt.Errorf("resolver role %q: %w", role.Name, err)
		}
		usuario.Roles[i].ID = roleID
		if _, err := tx.Exec(ctx,
			`INSERT INTO usuario_roles (usuario_id, role_id) VALUES ($1, $2)`,
			usuario.ID, roleID,
		); err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrRoleInvalida
			}
			return fmt.Errorf("vincular role: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// FindByUsername obtém um usuário pelo username, sem roles. (nil, nil) quando ausente.
func (r *UsuarioRepo) FindByUsername(ctx context.Context, username string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password FROM usuarios WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar usuário: %w", err)
	}
	return &u, nil
}

// FindByUsernameComRoles carrega usuário e roles num único round trip (JOIN),
// sem proxies de lazy loading: a entidade volta totalmente materializada.
func (r *UsuarioRepo) FindByUsernameComRoles(ctx context.Context, username string) (*entity.Usuario, error) {
	query := `
		SELECT u.id, u.username, u.password, r.id, r.name
		FROM usuarios u
		JOIN usuario_roles ur ON ur.usuario_id = u.id
		JOIN roles r ON r.id = ur.role_id
		WHERE u.username = $1`
	rows, err := r.pool.Query(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("buscar usuário com roles: %w", err)
	}
	defer rows.Close()

	var usuario *entity.Usuario
	for rows.Next() {
		var (
			u    entity.Usuario
			role entity.Role
		)
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &role.ID, &role.Name); err != nil {
			return nil, fmt.Errorf("scan usuário: %w", err)
		}
		if usuario == nil {
			usuario = &u
		}
		usuario.Roles = append(usuario.Roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return usuario, nil
}
