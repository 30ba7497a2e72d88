package usecase

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/ruanwillians/indoorTv-core/internal/application/dto"
	"github.com/ruanwillians/indoorTv-core/internal/domain"
	"github.com/ruanwillians/indoorTv-core/internal/domain/entity"
	"github.com/ruanwillians/indoorTv-core/internal/domain/repository"
)

// CompanyService orquesta las reglas de negocio de empresas.
type CompanyService struct {
	companies repository.CompanyRepository
}

// NewCompanyService construye el servicio con su puerto de persistencia.
func NewCompanyService(companies repository.CompanyRepository) *CompanyService {
	return &CompanyService{companies: companies}
}

// Create valida la entidad, sondea la unicidad del documento y persiste.
func (s *CompanyService) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.Response, error) {
	var addr *entity.Address
	if in.Address != nil {
		addr = &entity.Address{
			ID:      uuid.New().String(),
			Street:  in.Address.Street,
			City:    in.Address.City,
			State:   in.Address.State,
			ZipCode: in.Address.ZipCode,
		}
	}
	company, err := entity.NewCompany(uuid.New().String(), in.Name, in.Document, in.OwnerID, addr)
	if err != nil {
		return nil, err
	}

	existing, err := s.companies.FindByDocument(ctx, company.Document())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDocumentInUse
	}

	created, err := s.companies.Create(ctx, company)
	if err != nil {
		return nil, err
	}
	return &dto.Response{
		StatusCode: http.StatusCreated,
		Message:    "Company created successfully",
		Data:       created,
	}, nil
}

// FindAll lista empresas paginadas.
func (s *CompanyService) FindAll(ctx context.Context, page, limit int) (*dto.Response, error) {
	companies, err := s.companies.FindAll(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return &dto.Response{StatusCode: http.StatusOK, Data: companies}, nil
}

// FindOne busca por id; propaga domain.ErrCompanyNotFound.
func (s *CompanyService) FindOne(ctx context.Context, id string) (*dto.Response, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	snap := company.Object()
	return &dto.Response{StatusCode: http.StatusOK, Data: snap}, nil
}

// Update corre los mutadores de la entidad cargada y persiste el resultado;
// la entidad revalida sus invariantes en cada mutación.
func (s *CompanyService) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.Response, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if err := company.ChangeName(*in.Name); err != nil {
			return nil, err
		}
	}
	if in.Document != nil {
		if err := company.ChangeDocument(*in.Document); err != nil {
			return nil, err
		}
	}
	updated, err := s.companies.Update(ctx, company)
	if err != nil {
		return nil, err
	}
	return &dto.Response{StatusCode: http.StatusOK, Data: updated}, nil
}

// AddAddress reemplaza el slot de dirección de la empresa.
func (s *CompanyService) AddAddress(ctx context.Context, id string, in dto.AddressRequest) (*dto.Response, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	company.AddAddress(entity.Address{
		ID:      uuid.New().String(),
		Street:  in.Street,
		City:    in.City,
		State:   in.State,
		ZipCode: in.ZipCode,
	})
	updated, err := s.companies.Update(ctx, company)
	if err != nil {
		return nil, err
	}
	return &dto.Response{StatusCode: http.StatusOK, Data: updated}, nil
}

// RemoveAddress limpia el slot de dirección (el id recibido no se compara;
// ver nota en la entidad).
func (s *CompanyService) RemoveAddress(ctx context.Context, id, addressID string) (*dto.Response, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	company.RemoveAddress(addressID)
	updated, err := s.companies.Update(ctx, company)
	if err != nil {
		return nil, err
	}
	return &dto.Response{StatusCode: http.StatusOK, Data: updated}, nil
}

// Remove elimina la empresa.
func (s *CompanyService) Remove(ctx context.Context, id string) (*dto.Response, error) {
	if err := s.companies.Remove(ctx, id); err != nil {
		return nil, err
	}
	return &dto.Response{StatusCode: http.StatusOK, Message: "Company removed successfully"}, nil
}
