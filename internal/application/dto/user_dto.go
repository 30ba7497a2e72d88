package dto

// CreateUserRequest entrada para crear un usuario (password en texto plano,
// se hashea en el repositorio). Llega prevalidada en forma desde el borde HTTP.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Document string `json:"document"`
	IsActive bool   `json:"isActive"`
}

// CreateUserWithAccessRequest crea el usuario y su acceso a una empresa en
// una sola operación transaccional.
type CreateUserWithAccessRequest struct {
	CreateUserRequest
	CompanyID string `json:"companyId"`
	Role      string `json:"role"`
}

// UpdateUserRequest parche de usuario; los campos nil no se tocan.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Document *string `json:"document"`
	IsActive *bool   `json:"isActive"`
	Password *string `json:"password"`
}

// UpdateAccessRequest cambia el rol de un acceso existente. Los datos del
// usuario vienen del borde ya validados en forma; la entidad los revalida.
type UpdateAccessRequest struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Document  string `json:"document"`
	CompanyID string `json:"companyId"`
	Role      string `json:"role"`
}
