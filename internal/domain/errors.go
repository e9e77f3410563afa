package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound        = errors.New("recurso não encontrado")
	ErrUsuarioJaExiste = errors.New("usuário já existe")
	ErrRoleInvalida    = errors.New("role inexistente")
	ErrInvalidInput    = errors.New("entrada inválida")
)
