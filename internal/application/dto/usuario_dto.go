package dto

// NovoUsuarioDTO entrada de registro de usuário (password em texto, hasheado no use case).
type NovoUsuarioDTO struct {
	Username *string  `json:"username" validate:"required"`
	Password *string  `json:"password" validate:"required"`
	Roles    []string `json:"roles" validate:"required,min=1"`
}
