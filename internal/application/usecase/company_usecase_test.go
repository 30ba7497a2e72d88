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
)

// trackingCompanyRepo extiende el fake con registro de FindByDocument y Update.
type trackingCompanyRepo struct {
	fakeCompanyRepo
	byDocument map[string]*entity.Company
	updated    *entity.Company
}

func (f *trackingCompanyRepo) FindByDocument(_ context.Context, document string) (*entity.Company, error) {
	return f.byDocument[document], nil
}

func (f *trackingCompanyRepo) Update(_ context.Context, c *entity.Company) (*entity.CompanySnapshot, error) {
	f.updated = c
	snap := c.Object()
	return &snap, nil
}

func newTrackingCompanyRepo(companies ...*entity.Company) *trackingCompanyRepo {
	r := &trackingCompanyRepo{byDocument: map[string]*entity.Company{}}
	r.companies = map[string]*entity.Company{}
	for _, c := range companies {
		r.companies[c.ID()] = c
		r.byDocument[c.Document()] = c
	}
	return r
}

func TestCompanyService_Create(t *testing.T) {
	repo := newTrackingCompanyRepo()
	svc := usecase.NewCompanyService(repo)

	out, err := svc.Create(context.Background(), dto.CreateCompanyRequest{
		Name:     "Acme",
		Document: "12345678901",
		OwnerID:  "owner-1",
		Address:  &dto.AddressRequest{Street: "Rua A", City: "São Paulo"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, out.StatusCode)
	snap, ok := out.Data.(*entity.CompanySnapshot)
	require.True(t, ok)
	assert.NotEmpty(t, snap.ID)
	require.NotNil(t, snap.Address)
	assert.Equal(t, "Rua A", snap.Address.Street)
}

func TestCompanyService_Create_DocumentoEnUso(t *testing.T) {
	existing, err := entity.NewCompany("c1", "Otra", "12345678901", "o1", nil)
	require.NoError(t, err)
	svc := usecase.NewCompanyService(newTrackingCompanyRepo(existing))

	_, err = svc.Create(context.Background(), dto.CreateCompanyRequest{
		Name:     "Acme",
		Document: "12345678901",
		OwnerID:  "owner-1",
	})
	assert.ErrorIs(t, err, domain.ErrDocumentInUse)
}

func TestCompanyService_Create_Invalida(t *testing.T) {
	svc := usecase.NewCompanyService(newTrackingCompanyRepo())

	_, err := svc.Create(context.Background(), dto.CreateCompanyRequest{
		Name:     "Acme",
		Document: "corto",
	})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "document", ve.Field)
}

func TestCompanyService_Update_CorreMutadores(t *testing.T) {
	company, err := entity.NewCompany("c1", "Acme", "12345678901", "o1", nil)
	require.NoError(t, err)
	repo := newTrackingCompanyRepo(company)
	svc := usecase.NewCompanyService(repo)

	name := "Acme Corp"
	out, err := svc.Update(context.Background(), "c1", dto.UpdateCompanyRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, out.StatusCode)
	require.NotNil(t, repo.updated)
	assert.Equal(t, "Acme Corp", repo.updated.Name())
}

func TestCompanyService_Update_DocumentoInvalido(t *testing.T) {
	company, err := entity.NewCompany("c1", "Acme", "12345678901", "o1", nil)
	require.NoError(t, err)
	repo := newTrackingCompanyRepo(company)
	svc := usecase.NewCompanyService(repo)

	bad := "123"
	_, err = svc.Update(context.Background(), "c1", dto.UpdateCompanyRequest{Document: &bad})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Nil(t, repo.updated, "la mutación rechazada no debe persistirse")
}

func TestCompanyService_AddYRemoveAddress(t *testing.T) {
	company, err := entity.NewCompany("c1", "Acme", "12345678901", "o1", nil)
	require.NoError(t, err)
	repo := newTrackingCompanyRepo(company)
	svc := usecase.NewCompanyService(repo)

	_, err = svc.AddAddress(context.Background(), "c1", dto.AddressRequest{Street: "Rua A"})
	require.NoError(t, err)
	require.NotNil(t, company.Address())

	// El id que se pasa no se compara: el slot se limpia igual.
	_, err = svc.RemoveAddress(context.Background(), "c1", "id-que-no-coincide")
	require.NoError(t, err)
	assert.Nil(t, company.Address())
}

func TestCompanyService_FindOne_PropagaNotFound(t *testing.T) {
	svc := usecase.NewCompanyService(newTrackingCompanyRepo())

	_, err := svc.FindOne(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}
