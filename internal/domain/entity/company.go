package entity

import "github.com/ruanwillians/indoorTv-core/internal/domain"

// Address dirección única de una empresa. Slot único, no colección.
type Address struct {
	ID      string `json:"id"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// Company entidad de dominio. Referencia a su dueño por id (no hay
// propiedad bidireccional con User).
type Company struct {
	id       string
	name     string
	document string
	ownerID  string
	address  *Address
}

// CompanySnapshot proyección de solo lectura de una Company.
type CompanySnapshot struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Document string   `json:"document"`
	OwnerID  string   `json:"ownerId"`
	Address  *Address `json:"address,omitempty"`
}

// NewCompany construye una Company validando nombre y documento.
func NewCompany(id, name, document, ownerID string, address *Address) (*Company, error) {
	c := &Company{
		id:       id,
		name:     name,
		document: document,
		ownerID:  ownerID,
		address:  address,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Company) validate() error {
	if err := domain.RequireNonEmpty(c.name, "name"); err != nil {
		return err
	}
	if err := domain.RequireNonEmpty(c.document, "document"); err != nil {
		return err
	}
	if err := domain.RequireExactLength(c.document, DocumentLength, "document"); err != nil {
		return err
	}
	return nil
}

// ChangeName reasigna el nombre y revalida.
func (c *Company) ChangeName(name string) error {
	c.name = name
	return c.validate()
}

// ChangeDocument reasigna el documento y revalida.
func (c *Company) ChangeDocument(document string) error {
	c.document = document
	return c.validate()
}

// AddAddress reemplaza la dirección actual sin condiciones.
func (c *Company) AddAddress(address Address) {
	c.address = &address
}

// RemoveAddress limpia el slot de dirección. El addressID recibido no se
// compara contra la dirección actual (comportamiento heredado, pendiente de
// definición de producto).
func (c *Company) RemoveAddress(addressID string) {
	_ = addressID
	c.address = nil
}

// Object devuelve la proyección inmutable de la empresa.
func (c *Company) Object() CompanySnapshot {
	var addr *Address
	if c.address != nil {
		copied := *c.address
		addr = &copied
	}
	return CompanySnapshot{
		ID:       c.id,
		Name:     c.name,
		Document: c.document,
		OwnerID:  c.ownerID,
		Address:  addr,
	}
}

func (c *Company) ID() string        { return c.id }
func (c *Company) Name() string      { return c.name }
func (c *Company) Document() string  { return c.document }
func (c *Company) OwnerID() string   { return c.ownerID }
func (c *Company) Address() *Address { return c.address }
