package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruanwillians/indoorTv-core/internal/application/dto"
	"github.com/ruanwillians/indoorTv-core/internal/application/usecase"
	"github.com/ruanwillians/indoorTv-core/internal/domain"
	"github.com/ruanwillians/indoorTv-core/internal/domain/entity"
	"github.com/ruanwillians/indoorTv-core/internal/domain/repository"
)

// fakeUserRepo doble de test del puerto UserRepository. Registra las
// llamadas recibidas para poder afirmar sobre ellas.
type fakeUserRepo struct {
	byEmail map[string]*entity.UserSnapshot
	byID    map[string]*entity.UserSnapshot

	createdUser    *entity.User
	createdCompany *entity.Company
	createdRole    entity.Role
	accessExists   bool
	accessUpdated  *entity.CompanyAccess
	removedID      string
	updatePatch    *repository.UpdateUser
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*entity.UserSnapshot{},
		byID:    map[string]*entity.UserSnapshot{},
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) (*entity.UserSnapshot, error) {
	f.createdUser = user
	snap := user.Object()
	return &snap, nil
}

func (f *fakeUserRepo) CreateWithCompanyAccess(_ context.Context, user *entity.User, company *entity.Company, role entity.Role) (*entity.UserSnapshot, error) {
	f.createdUser = user
	f.createdCompany = company
	f.createdRole = role
	snap := user.Object()
	return &snap, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context, _, _ int) ([]entity.UserSnapshot, error) {
	var out []entity.UserSnapshot
	for _, s := range f.byID {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.UserSnapshot, error) {
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.UserSnapshot, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) Update(_ context.Context, id string, patch repository.UpdateUser) (*entity.UserSnapshot, error) {
	f.updatePatch = &patch
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) Remove(_ context.Context, id string) error {
	f.removedID = id
	return nil
}

func (f *fakeUserRepo) UpdateCompanyAccess(_ context.Context, user *entity.User, companyID string, role entity.Role) (*entity.UserSnapshot, error) {
	if !f.accessExists {
		return nil, domain.ErrAccessNotFound
	}
	f.accessUpdated = &entity.CompanyAccess{UserID: user.ID(), CompanyID: companyID, Role: role}
	snap := user.Object()
	return &snap, nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func (f *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) (*entity.CompanySnapshot, error) {
	snap := c.Object()
	return &snap, nil
}

func (f *fakeCompanyRepo) FindByID(_ context.Context, id string) (*entity.Company, error) {
	if c, ok := f.companies[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCompanyNotFound
}

func (f *fakeCompanyRepo) FindByDocument(_ context.Context, _ string) (*entity.Company, error) {
	return nil, nil
}

func (f *fakeCompanyRepo) FindAll(_ context.Context, _, _ int) ([]entity.CompanySnapshot, error) {
	return nil, nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, c *entity.Company) (*entity.CompanySnapshot, error) {
	snap := c.Object()
	return &snap, nil
}

func (f *fakeCompanyRepo) Remove(_ context.Context, _ string) error { return nil }

func createRequest() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "secret123",
		Document: "12345678901",
	}
}

func TestUserService_Create_EmailLibre(t *testing.T) {
	repo := newFakeUserRepo()
	svc := usecase.NewUserService(repo, &fakeCompanyRepo{})

	out, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, out.StatusCode)
	assert.Equal(t, "User created successfully", out.Message)

	require.NotNil(t, repo.createdUser, "el repositorio debe recibir la entidad")
	assert.NotEmpty(t, repo.createdUser.ID(), "la fábrica asigna un id nuevo")
	assert.Equal(t, "secret123", repo.createdUser.Password(), "el hash ocurre en el repositorio, no en el servicio")
}

func TestUserService_Create_EmailEnUso(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byEmail["john@example.com"] = &entity.UserSnapshot{ID: "existente", Email: "john@example.com"}
	svc := usecase.NewUserService(repo, &fakeCompanyRepo{})

	_, err := svc.Create(context.Background(), createRequest())
	assert.ErrorIs(t, err, domain.ErrEmailInUse)
	assert.Nil(t, repo.createdUser, "no debe intentarse ninguna escritura")
}

func TestUserService_Create_EntidadInvalida(t *testing.T) {
	repo := newFakeUserRepo()
	svc := usecase.NewUserService(repo, &fakeCompanyRepo{})

	in := createRequest()
	in.Document = "123"
	_, err := svc.Create(context.Background(), in)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "document", ve.Field)
	assert.Nil(t, repo.createdUser)
}

func TestUserService_CreateWithCompanyAccess(t *testing.T) {
	company, err := entity.NewCompany("comp-1", "Acme", "98765432109", "owner-1", nil)
	require.NoError(t, err)

	repo := newFakeUserRepo()
	svc := usecase.NewUserService(repo, &fakeCompanyRepo{companies: map[string]*entity.Company{"comp-1": company}})

	out, err := svc.CreateWithCompanyAccess(context.Background(), dto.CreateUserWithAccessRequest{
		CreateUserRequest: createRequest(),
		CompanyID:         "comp-1",
		Role:              "ADMIN",
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, out.StatusCode)
	assert.Equal(t, entity.RoleAdmin, repo.createdRole)
	require.NotNil(t, repo.createdCompany)
	assert.Equal(t, "comp-1", repo.createdCompany.ID())
	require.Len(t, repo.createdUser.Companies(), 1, "la entidad lleva la empresa asociada")
}

func TestUserService_CreateWithCompanyAccess_EmpresaInexistente(t *testing.T) {
	repo := newFakeUserRepo()
	svc := usecase.NewUserService(repo, &fakeCompanyRepo{companies: map[string]*entity.Company{}})

	_, err := svc.CreateWithCompanyAccess(context.Background(), dto.CreateUserWithAccessRequest{
		CreateUserRequest: createRequest(),
		CompanyID:         "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}

func TestUserService_FindOne_PropagaNotFound(t *testing.T) {
	svc := usecase.NewUserService(newFakeUserRepo(), &fakeCompanyRepo{})

	_, err := svc.FindOne(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_FindOne_Envuelve(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byID["u1"] = &entity.UserSnapshot{ID: "u1", Name: "John"}
	svc := usecase.NewUserService(repo, &fakeCompanyRepo{})

	out, err := svc.FindOne(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, out.StatusCode)
	assert.Equal(t, repo.byID["u1"], out.Data)
}

func TestUserService_Update_MapeaElParche(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byID["u1"] = &entity.UserSnapshot{ID: "u1"}
	svc := usecase.NewUserService(repo, &fakeCompanyRepo{})

	name := "Jane"
	active := true
	out, err := svc.Update(context.Background(), "u1", dto.UpdateUserRequest{Name: &name, IsActive: &active})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, out.StatusCode)
	require.NotNil(t, repo.updatePatch)
	assert.Equal(t, &name, repo.updatePatch.Name)
	assert.Equal(t, &active, repo.updatePatch.IsActive)
	assert.Nil(t, repo.updatePatch.Email)
}

func TestUserService_Remove(t *testing.T) {
	repo := newFakeUserRepo()
	svc := usecase.NewUserService(repo, &fakeCompanyRepo{})

	out, err := svc.Remove(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, out.StatusCode)
	assert.Equal(t, "u1", repo.removedID)
}

func TestUserService_UpdateAccessRole_SinFilaPrevia(t *testing.T) {
	repo := newFakeUserRepo()
	repo.accessExists = false
	svc := usecase.NewUserService(repo, &fakeCompanyRepo{})

	_, err := svc.UpdateAccessRole(context.Background(), dto.UpdateAccessRequest{
		UserID:    "u1",
		Name:      "John",
		Email:     "john@example.com",
		Password:  "secret123",
		Document:  "12345678901",
		CompanyID: "comp-1",
		Role:      "ADMIN",
	})
	assert.ErrorIs(t, err, domain.ErrAccessNotFound)
	assert.Nil(t, repo.accessUpdated, "no debe crearse ninguna fila como efecto colateral")
}

func TestUserService_UpdateAccessRole_ConFilaPrevia(t *testing.T) {
	repo := newFakeUserRepo()
	repo.accessExists = true
	svc := usecase.NewUserService(repo, &fakeCompanyRepo{})

	out, err := svc.UpdateAccessRole(context.Background(), dto.UpdateAccessRequest{
		UserID:    "u1",
		Name:      "John",
		Email:     "john@example.com",
		Password:  "secret123",
		Document:  "12345678901",
		CompanyID: "comp-1",
		Role:      "ADMIN",
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, out.StatusCode)
	require.NotNil(t, repo.accessUpdated)
	assert.Equal(t, entity.RoleAdmin, repo.accessUpdated.Role)
	assert.Equal(t, "comp-1", repo.accessUpdated.CompanyID)
}
