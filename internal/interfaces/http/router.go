// Package http registra los handlers Fiber de la API.
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruanwillians/indoorTv-core/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserSvc    *usecase.UserService
	CompanySvc *usecase.CompanyService
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserSvc)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Post("/with-access", userHandler.CreateWithAccess)
	users.Put("/access", userHandler.UpdateAccessRole)
	users.Get("/:id", userHandler.GetByID)
	users.Patch("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanySvc)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Patch("/:id", companyHandler.Update)
	companies.Put("/:id/address", companyHandler.AddAddress)
	companies.Delete("/:id/address/:addressId", companyHandler.RemoveAddress)
	companies.Delete("/:id", companyHandler.Delete)
}
