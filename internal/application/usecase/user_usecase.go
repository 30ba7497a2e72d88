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

// UserService orquesta las reglas de negocio de usuarios sobre los puertos
// de persistencia. La unicidad de email se sondea aquí antes de escribir;
// el constraint único de la base cubre la carrera sondeo→insert.
type UserService struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
}

// NewUserService construye el servicio con sus puertos.
func NewUserService(users repository.UserRepository, companies repository.CompanyRepository) *UserService {
	return &UserService{users: users, companies: companies}
}

// newUserFromRequest fábrica: id nuevo + entidad validada.
func newUserFromRequest(in dto.CreateUserRequest) (*entity.User, error) {
	return entity.NewUser(uuid.New().String(), in.Name, in.Email, in.Password, in.Document, nil, in.IsActive)
}

// Create valida la entidad, sondea la unicidad del email y delega la
// escritura al repositorio.
func (s *UserService) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.Response, error) {
	user, err := newUserFromRequest(in)
	if err != nil {
		return nil, err
	}

	existing, err := s.users.FindByEmail(ctx, user.Email())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailInUse
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.Response{
		StatusCode: http.StatusCreated,
		Message:    "User created successfully",
		Data:       created,
	}, nil
}

// CreateWithCompanyAccess crea el usuario junto con su fila de acceso a la
// empresa indicada; ambas escrituras se confirman en una sola transacción.
func (s *UserService) CreateWithCompanyAccess(ctx context.Context, in dto.CreateUserWithAccessRequest) (*dto.Response, error) {
	company, err := s.companies.FindByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}

	user, err := newUserFromRequest(in.CreateUserRequest)
	if err != nil {
		return nil, err
	}
	user.DefineAccessCompanies(*company)

	existing, err := s.users.FindByEmail(ctx, user.Email())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailInUse
	}

	role := entity.Role(in.Role)
	if !role.Valid() {
		role = entity.RoleUser
	}
	created, err := s.users.CreateWithCompanyAccess(ctx, user, company, role)
	if err != nil {
		return nil, err
	}
	return &dto.Response{
		StatusCode: http.StatusCreated,
		Message:    "User created successfully",
		Data:       created,
	}, nil
}

// FindAll lista usuarios paginados.
func (s *UserService) FindAll(ctx context.Context, page, limit int) (*dto.Response, error) {
	users, err := s.users.FindAll(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return &dto.Response{StatusCode: http.StatusOK, Data: users}, nil
}

// FindOne busca por id; propaga domain.ErrUserNotFound sin reinterpretar.
func (s *UserService) FindOne(ctx context.Context, id string) (*dto.Response, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.Response{StatusCode: http.StatusOK, Data: user}, nil
}

// Update aplica el parche sobre el usuario.
func (s *UserService) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.Response, error) {
	updated, err := s.users.Update(ctx, id, repository.UpdateUser{
		Name:     in.Name,
		Email:    in.Email,
		Document: in.Document,
		IsActive: in.IsActive,
		Password: in.Password,
	})
	if err != nil {
		return nil, err
	}
	return &dto.Response{StatusCode: http.StatusOK, Data: updated}, nil
}

// Remove elimina el usuario.
func (s *UserService) Remove(ctx context.Context, id string) (*dto.Response, error) {
	if err := s.users.Remove(ctx, id); err != nil {
		return nil, err
	}
	return &dto.Response{StatusCode: http.StatusOK, Message: "User removed successfully"}, nil
}

// UpdateAccessRole cambia el rol de un acceso existente. El repositorio
// exige la fila previa y devuelve domain.ErrAccessNotFound si falta.
func (s *UserService) UpdateAccessRole(ctx context.Context, in dto.UpdateAccessRequest) (*dto.Response, error) {
	user, err := entity.NewUser(in.UserID, in.Name, in.Email, in.Password, in.Document, nil, false)
	if err != nil {
		return nil, err
	}
	updated, err := s.users.UpdateCompanyAccess(ctx, user, in.CompanyID, entity.Role(in.Role))
	if err != nil {
		return nil, err
	}
	return &dto.Response{StatusCode: http.StatusOK, Data: updated}, nil
}
