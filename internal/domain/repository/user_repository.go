package repository

import (
	"context"

	"github.com/ruanwillians/indoorTv-core/internal/domain/entity"
)

// UpdateUser parche de campos mutables de un usuario. Los campos nil no se
// tocan. Password llega en texto plano y se hashea antes de persistir.
type UpdateUser struct {
	Name     *string
	Email    *string
	Document *string
	IsActive *bool
	Password *string
}

// UserRepository puerto de persistencia para User (DIP).
// Las operaciones que escriben más de una fila son atómicas: o se confirman
// todas o ninguna.
type UserRepository interface {
	// Create hashea el password y persiste el usuario. Devuelve la
	// proyección del usuario creado.
	Create(ctx context.Context, user *entity.User) (*entity.UserSnapshot, error)

	// CreateWithCompanyAccess persiste el usuario y su fila de acceso a la
	// empresa dentro de una misma transacción.
	CreateWithCompanyAccess(ctx context.Context, user *entity.User, company *entity.Company, role entity.Role) (*entity.UserSnapshot, error)

	// FindAll pagina por offset: skip = (page-1)*limit cuando page > 1.
	FindAll(ctx context.Context, page, limit int) ([]entity.UserSnapshot, error)

	// FindByID devuelve domain.ErrUserNotFound si no existe.
	FindByID(ctx context.Context, id string) (*entity.UserSnapshot, error)

	// FindByEmail devuelve (nil, nil) cuando no existe; se usa para sondear
	// unicidad, la ausencia no es un error.
	FindByEmail(ctx context.Context, email string) (*entity.UserSnapshot, error)

	// Update aplica el parche sobre una sola fila y devuelve la proyección
	// actualizada. Devuelve domain.ErrUserNotFound si el id no existe.
	Update(ctx context.Context, id string, patch UpdateUser) (*entity.UserSnapshot, error)

	// Remove elimina el usuario por id.
	Remove(ctx context.Context, id string) error

	// UpdateCompanyAccess exige una fila de acceso previa para
	// (user.ID, companyID); devuelve domain.ErrAccessNotFound si no existe.
	// Devuelve la proyección del usuario recibido, sin releer.
	UpdateCompanyAccess(ctx context.Context, user *entity.User, companyID string, role entity.Role) (*entity.UserSnapshot, error)
}
