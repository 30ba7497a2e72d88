package repository

import (
	"context"

	"github.com/ruanwillians/indoorTv-core/internal/domain/entity"
)

// CompanyRepository puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) (*entity.CompanySnapshot, error)

	// FindByID devuelve la entidad completa (se necesita para correr los
	// mutadores); domain.ErrCompanyNotFound si no existe.
	FindByID(ctx context.Context, id string) (*entity.Company, error)

	// FindByDocument devuelve (nil, nil) cuando no existe.
	FindByDocument(ctx context.Context, document string) (*entity.Company, error)

	FindAll(ctx context.Context, page, limit int) ([]entity.CompanySnapshot, error)

	// Update persiste el estado actual de la entidad (una sola fila).
	Update(ctx context.Context, company *entity.Company) (*entity.CompanySnapshot, error)

	Remove(ctx context.Context, id string) error
}
