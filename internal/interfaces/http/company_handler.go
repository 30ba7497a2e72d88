package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruanwillians/indoorTv-core/internal/application/dto"
	"github.com/ruanwillians/indoorTv-core/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
type CompanyHandler struct {
	svc *usecase.CompanyService
}

// NewCompanyHandler construye el handler inyectando el servicio.
func NewCompanyHandler(svc *usecase.CompanyService) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

// Create godoc
// @Summary      Crear empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(out.StatusCode).JSON(out)
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200    {object}  dto.Response
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	out, err := h.svc.FindAll(c.UserContext(), page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(out.StatusCode).JSON(out)
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         companies
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.FindOne(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(out.StatusCode).JSON(out)
}

// Update godoc
// @Summary      Actualizar empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [patch]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.svc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(out.StatusCode).JSON(out)
}

// AddAddress godoc
// @Summary      Definir dirección de la empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID de la empresa"
// @Param        body  body  dto.AddressRequest  true  "Dirección"
// @Success      200   {object}  dto.Response
// @Router       /api/companies/{id}/address [put]
func (h *CompanyHandler) AddAddress(c *fiber.Ctx) error {
	var in dto.AddressRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.svc.AddAddress(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(out.StatusCode).JSON(out)
}

// RemoveAddress godoc
// @Summary      Quitar dirección de la empresa
// @Tags         companies
// @Produce      json
// @Param        id         path  string  true  "ID de la empresa"
// @Param        addressId  path  string  true  "ID de la dirección"
// @Success      200        {object}  dto.Response
// @Router       /api/companies/{id}/address/{addressId} [delete]
func (h *CompanyHandler) RemoveAddress(c *fiber.Ctx) error {
	out, err := h.svc.RemoveAddress(c.UserContext(), c.Params("id"), c.Params("addressId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(out.StatusCode).JSON(out)
}

// Delete godoc
// @Summary      Eliminar empresa
// @Tags         companies
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Response
// @Router       /api/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	out, err := h.svc.Remove(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(out.StatusCode).JSON(out)
}
