package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/auth"
	appreport "github.com/appdotbuilder/consultancy-time-tracker/internal/application/report"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/usecase"
	infrapdf "github.com/appdotbuilder/consultancy-time-tracker/internal/infrastructure/pdf"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/infrastructure/postgres"
	httpRouter "github.com/appdotbuilder/consultancy-time-tracker/internal/interfaces/http"
	"github.com/appdotbuilder/consultancy-time-tracker/pkg/config"
	"github.com/appdotbuilder/consultancy-time-tracker/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones de esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	positionRepo := postgres.NewPositionRepository(pool)
	timeEntryRepo := postgres.NewTimeEntryRepository(pool)
	noteRepo := postgres.NewNoteRepository(pool)
	activityRepo := postgres.NewActivityLogRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	contactUC := usecase.NewContactUseCase(contactRepo, clientRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo, clientRepo)
	positionUC := usecase.NewPositionUseCase(positionRepo, projectRepo)
	timeEntryUC := usecase.NewTimeEntryUseCase(timeEntryRepo, positionRepo, txRunner)
	noteUC := usecase.NewNoteUseCase(noteRepo, clientRepo)
	activityUC := usecase.NewActivityUseCase(activityRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	budgetUC := appreport.NewBudgetUseCase(reportRepo)
	utilizationUC := appreport.NewUtilizationUseCase(reportRepo, cfg.Report.HoursPerDay)
	bookingUC := appreport.NewBookingUseCase(reportRepo, pdfGenerator, cfg.Report.BookingPageSize)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		ClientUC:      clientUC,
		ContactUC:     contactUC,
		ProjectUC:     projectUC,
		PositionUC:    positionUC,
		TimeEntryUC:   timeEntryUC,
		NoteUC:        noteUC,
		ActivityUC:    activityUC,
		BudgetUC:      budgetUC,
		UtilizationUC: utilizationUC,
		BookingUC:     bookingUC,
		JWTSecret:     cfg.JWT.Secret,
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
