package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/anuncios-armazem/internal/application/auth"
	"github.com/jhoicas/anuncios-armazem/internal/application/listing"
	"github.com/jhoicas/anuncios-armazem/internal/application/usecase"
	"github.com/jhoicas/anuncios-armazem/internal/domain/repository"
	infrapdf "github.com/jhoicas/anuncios-armazem/internal/infrastructure/pdf"
	"github.com/jhoicas/anuncios-armazem/internal/infrastructure/postgres"
	"github.com/jhoicas/anuncios-armazem/internal/infrastructure/sqlite"
	"github.com/jhoicas/anuncios-armazem/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/anuncios-armazem/internal/interfaces/http"
	"github.com/jhoicas/anuncios-armazem/pkg/config"
	"github.com/jhoicas/anuncios-armazem/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	var (
		companyRepo repository.CompanyRepository
		listingRepo repository.ListingRepository
	)
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		pool, err := openPostgres(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		companyRepo = postgres.NewCompanyRepository(pool)
		listingRepo = postgres.NewListingRepository(pool)
	default:
		db, err := openSQLite(ctx, cfg.DB.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DB.SQLitePath).Msg("apertura de SQLite")
		}
		defer db.Close()
		companyRepo = sqlite.NewCompanyRepository(db)
		listingRepo = sqlite.NewListingRepository(db)
	}

	authUC := auth.NewAuthUseCase(companyRepo)
	listingUC := usecase.NewListingUseCase(listingRepo)
	imageStore := storage.NewLocalImageStore(cfg.Upload.Dir)
	createListingUC := listing.NewCreateListingUseCase(listingRepo, imageStore, cfg.Upload.MaxFiles, cfg.Session.DraftTTL())

	// PDF: ficha imprimible del anuncio
	sheetUC := listing.NewSheetUseCase(listingRepo, companyRepo, infrapdf.NewMarotoSheetGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.Upload.MaxBodyMB * 1024 * 1024,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: httpRouter.LocalRequestID,
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    cfg.App.Name,
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado")
	}

	// Imágenes subidas
	app.Static("/static/imagens", cfg.Upload.Dir)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		ListingUC:       listingUC,
		CreateListingUC: createListingUC,
		SheetUC:         sheetUC,
		Sessions:        httpRouter.NewSessionStore(cfg.Session),
		Logger:          log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := sqlite.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func openPostgres(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
