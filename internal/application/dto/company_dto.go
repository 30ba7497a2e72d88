package dto

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name     string          `json:"name"`
	Document string          `json:"document"`
	OwnerID  string          `json:"ownerId"`
	Address  *AddressRequest `json:"address"`
}

// AddressRequest dirección de la empresa (slot único).
type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// UpdateCompanyRequest parche de empresa; los campos nil no se tocan.
type UpdateCompanyRequest struct {
	Name     *string `json:"name"`
	Document *string `json:"document"`
}
