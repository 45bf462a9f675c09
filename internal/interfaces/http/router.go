package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/anuncios-armazem/internal/application/auth"
	"github.com/jhoicas/anuncios-armazem/internal/application/listing"
	"github.com/jhoicas/anuncios-armazem/internal/application/usecase"
	"github.com/jhoicas/anuncios-armazem/internal/domain/entity"
	"github.com/jhoicas/anuncios-armazem/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	ListingUC       *usecase.ListingUseCase
	CreateListingUC *listing.CreateListingUseCase
	SheetUC         *listing.SheetUseCase
	Sessions        *session.Store
	Logger          *logger.Logger
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	requireSession := RequireSession(deps.Sessions)
	requireWarehouse := RequireCompanyType(entity.CompanyTypeWarehouse)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions, log)
	app.Get("/", authHandler.Home)
	app.Get("/login", authHandler.LoginPage)
	app.Post("/login", authHandler.Login)
	app.Get("/register", authHandler.RegisterPage)
	app.Post("/register", authHandler.Register)
	app.Get("/logout", authHandler.Logout)

	// Consulta de anuncios
	listingHandler := NewListingHandler(deps.ListingUC, deps.SheetUC, log)
	app.Get("/dashboard", requireSession, listingHandler.Dashboard)
	app.Get("/perfil", requireSession, listingHandler.Profile)
	app.Get("/anuncio/:id", listingHandler.GetByID)
	app.Get("/anuncio/:id/ficha", listingHandler.Sheet)

	// Creación de anuncios; la etapa 2 no exige sesión
	draftHandler := NewDraftHandler(deps.CreateListingUC, deps.Sessions, log)
	app.Get("/criar_anuncio", requireSession, requireWarehouse, draftHandler.NewListingForm)
	app.Post("/criar_anuncio", requireSession, requireWarehouse, draftHandler.NewListingForm)
	app.Post("/criar_anuncio_etapa2", draftHandler.SaveDraft)
	app.Post("/finalizar_anuncio", requireSession, requireWarehouse, draftHandler.Finalize)
}
