package entity

import "github.com/ruanwillians/indoorTv-core/internal/domain"

// Límites de longitud del password, aplicados solo al cambiarlo.
const (
	PasswordMinLength = 6
	PasswordMaxLength = 20
)

// DocumentLength longitud exacta exigida para el documento (CPF).
const DocumentLength = 11

// User entidad de dominio autovalidada. Toda mutación pasa por métodos con
// nombre y revalida el estado completo antes de aceptarse.
type User struct {
	id        string
	name      string
	email     string
	password  string
	document  string
	isActive  bool
	companies []Company
}

// UserSnapshot proyección de solo lectura de un User. El password se excluye
// deliberadamente de esta vista.
type UserSnapshot struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	IsActive  bool              `json:"isActive"`
	Document  string            `json:"document"`
	Companies []CompanySnapshot `json:"companies"`
}

// NewUser construye un User validando todos los campos obligatorios.
// Devuelve *domain.ValidationError en la primera regla violada.
func NewUser(id, name, email, password, document string, companies []Company, isActive bool) (*User, error) {
	u := &User{
		id:        id,
		name:      name,
		email:     email,
		password:  password,
		document:  document,
		isActive:  isActive,
		companies: companies,
	}
	if err := u.validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// validate revisa los invariantes de la entidad en orden fijo:
// name → document presente → document longitud → email presente → email forma → password presente.
func (u *User) validate() error {
	if err := domain.RequireNonEmpty(u.name, "name"); err != nil {
		return err
	}
	if err := domain.RequireNonEmpty(u.document, "document"); err != nil {
		return err
	}
	if err := domain.RequireExactLength(u.document, DocumentLength, "document"); err != nil {
		return err
	}
	if err := domain.RequireNonEmpty(u.email, "email"); err != nil {
		return err
	}
	if err := domain.RequireEmail(u.email); err != nil {
		return err
	}
	if err := domain.RequireNonEmpty(u.password, "password"); err != nil {
		return err
	}
	return nil
}

// ChangeName reasigna el nombre y revalida la entidad completa.
func (u *User) ChangeName(name string) error {
	u.name = name
	return u.validate()
}

// ChangeEmail reasigna el email y revalida la entidad completa.
func (u *User) ChangeEmail(email string) error {
	u.email = email
	return u.validate()
}

// ChangePassword valida solo la longitud del nuevo password (6..20);
// no revalida el resto de la entidad.
func (u *User) ChangePassword(newPassword string) error {
	if len(newPassword) < PasswordMinLength || len(newPassword) > PasswordMaxLength {
		return domain.ErrInvalidPasswordLength
	}
	u.password = newPassword
	return nil
}

// Activate marca el usuario como activo. Sin validación ni fallo posible.
func (u *User) Activate() { u.isActive = true }

// Deactivate marca el usuario como inactivo.
func (u *User) Deactivate() { u.isActive = false }

// DefineAccessCompanies agrega una empresa a la lista de accesos en memoria.
// No deduplica: el mismo id puede aparecer más de una vez.
func (u *User) DefineAccessCompanies(company Company) {
	u.companies = append(u.companies, company)
}

// Object devuelve la proyección inmutable del usuario (sin password).
func (u *User) Object() UserSnapshot {
	companies := make([]CompanySnapshot, 0, len(u.companies))
	for i := range u.companies {
		companies = append(companies, u.companies[i].Object())
	}
	return UserSnapshot{
		ID:        u.id,
		Name:      u.name,
		Email:     u.email,
		IsActive:  u.isActive,
		Document:  u.document,
		Companies: companies,
	}
}

func (u *User) ID() string           { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) Password() string     { return u.password }
func (u *User) Document() string     { return u.document }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) Companies() []Company { return u.companies }
