package entity

// Role rol de un usuario dentro de una empresa.
type Role string

// Roles válidos para CompanyAccess.
const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid informa si el rol es uno de los conocidos.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// CompanyAccess relación usuario↔empresa con rol. La clave compuesta
// (UserID, CompanyID) es única; la mantiene la capa de persistencia.
type CompanyAccess struct {
	UserID    string `json:"userId"`
	CompanyID string `json:"companyId"`
	Role      Role   `json:"role"`
}
