package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruanwillians/indoorTv-core/internal/domain"
	"github.com/ruanwillians/indoorTv-core/internal/domain/entity"
)

func validCompany(t *testing.T) *entity.Company {
	t.Helper()
	c, err := entity.NewCompany("comp-1", "Acme", "12345678901", "owner-1", nil)
	require.NoError(t, err)
	return c
}

func TestNewCompany_Valida(t *testing.T) {
	c := validCompany(t)

	obj := c.Object()
	assert.Equal(t, "comp-1", obj.ID)
	assert.Equal(t, "Acme", obj.Name)
	assert.Equal(t, "12345678901", obj.Document)
	assert.Equal(t, "owner-1", obj.OwnerID)
	assert.Nil(t, obj.Address)
}

func TestNewCompany_Invalida(t *testing.T) {
	cases := []struct {
		name     string
		compName string
		document string
		field    string
	}{
		{"nombre vacío", "", "12345678901", "name"},
		{"documento vacío", "Acme", "", "document"},
		{"documento con longitud incorrecta", "Acme", "1234", "document"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := entity.NewCompany("c1", tc.compName, tc.document, "owner-1", nil)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestCompany_ChangeNameYDocument(t *testing.T) {
	c := validCompany(t)

	require.NoError(t, c.ChangeName("Acme Corp"))
	require.NoError(t, c.ChangeDocument("10987654321"))
	assert.Equal(t, "Acme Corp", c.Name())
	assert.Equal(t, "10987654321", c.Document())

	var ve *domain.ValidationError
	require.ErrorAs(t, c.ChangeDocument("corto"), &ve)
	assert.Equal(t, "document", ve.Field)
}

func TestCompany_AddAddress_ReemplazaSlot(t *testing.T) {
	c := validCompany(t)

	c.AddAddress(entity.Address{ID: "a1", Street: "Rua A", City: "São Paulo"})
	c.AddAddress(entity.Address{ID: "a2", Street: "Rua B", City: "Campinas"})

	// Slot único: la segunda dirección reemplaza a la primera.
	require.NotNil(t, c.Address())
	assert.Equal(t, "a2", c.Address().ID)
}

// RemoveAddress limpia el slot sin comparar el id recibido; se testea el
// comportamiento vigente mientras producto no defina otra cosa.
func TestCompany_RemoveAddress_IgnoraElID(t *testing.T) {
	c := validCompany(t)
	c.AddAddress(entity.Address{ID: "a1", Street: "Rua A"})

	c.RemoveAddress("otro-id-cualquiera")
	assert.Nil(t, c.Address())
}

func TestCompany_Object_CopiaLaDireccion(t *testing.T) {
	c := validCompany(t)
	c.AddAddress(entity.Address{ID: "a1", Street: "Rua A"})

	obj := c.Object()
	obj.Address.Street = "mutada"

	assert.Equal(t, "Rua A", c.Address().Street, "mutar la proyección no toca la entidad")
}
