package entity

// Role agrupamento nomeado de permissões atribuível a um usuário.
type Role struct {
	ID   int64
	Name string
}

// Usuario usuário do sistema. Password guarda sempre o hash bcrypt,
// nunca o texto plano depois do registro. Roles vem materializado
// (sem lazy loading) quando carregado para autenticação.
type Usuario struct {
	ID       int64
	Username string
	Password string
	Roles    []Role
}
