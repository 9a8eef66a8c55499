package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/auth"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/report"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/usecase"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	ClientUC      *usecase.ClientUseCase
	ContactUC     *usecase.ContactUseCase
	ProjectUC     *usecase.ProjectUseCase
	PositionUC    *usecase.PositionUseCase
	TimeEntryUC   *usecase.TimeEntryUseCase
	NoteUC        *usecase.NoteUseCase
	ActivityUC    *usecase.ActivityUseCase
	BudgetUC      *report.BudgetUseCase
	UtilizationUC *report.UtilizationUseCase
	BookingUC     *report.BookingUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Escrituras de catálogo reservadas a gestión.
	manage := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Users (lectura para todos; cambios de rol/estado solo admin)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", RequireRole(entity.RoleAdmin), userHandler.Update)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", manage, clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", manage, clientHandler.Update)
	clients.Delete("/:id", manage, clientHandler.Delete)

	// Contacts (anidados bajo el cliente)
	contactHandler := NewContactHandler(deps.ContactUC)
	clients.Post("/:id/contacts", manage, contactHandler.Create)
	clients.Get("/:id/contacts", contactHandler.ListByClient)
	contacts := protected.Group("/contacts")
	contacts.Get("/:id", contactHandler.GetByID)
	contacts.Put("/:id", manage, contactHandler.Update)
	contacts.Delete("/:id", manage, contactHandler.Delete)

	// Notes CRM (anidadas bajo el cliente; cualquier usuario autenticado)
	noteHandler := NewNoteHandler(deps.NoteUC)
	clients.Post("/:id/notes", noteHandler.Create)
	clients.Get("/:id/notes", noteHandler.ListByClient)
	notes := protected.Group("/notes")
	notes.Get("/:id", noteHandler.GetByID)
	notes.Put("/:id", noteHandler.Update)
	notes.Delete("/:id", noteHandler.Delete)

	// Projects (protegido)
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Post("/", manage, projectHandler.Create)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Put("/:id", manage, projectHandler.Update)
	projects.Delete("/:id", manage, projectHandler.Delete)

	// Positions (protegido)
	positionHandler := NewPositionHandler(deps.PositionUC)
	projects.Get("/:id/positions", positionHandler.ListByProject)
	positions := protected.Group("/positions")
	positions.Post("/", manage, positionHandler.Create)
	positions.Get("/:id", positionHandler.GetByID)
	positions.Put("/:id", manage, positionHandler.Update)
	positions.Delete("/:id", manage, positionHandler.Delete)

	// Time entries (cualquier usuario autenticado; el handler acota por rol)
	entries := protected.Group("/time-entries")
	timeEntryHandler := NewTimeEntryHandler(deps.TimeEntryUC)
	entries.Post("/", timeEntryHandler.Create)
	entries.Get("/", timeEntryHandler.List)
	entries.Get("/:id", timeEntryHandler.GetByID)
	entries.Put("/:id", timeEntryHandler.Update)
	entries.Delete("/:id", timeEntryHandler.Delete)

	// Activity log (lectura para gestión; alta manual también)
	activity := protected.Group("/activity", manage)
	activityHandler := NewActivityHandler(deps.ActivityUC)
	activity.Post("/", activityHandler.Create)
	activity.Get("/", activityHandler.List)

	// Reports (gestión)
	reports := protected.Group("/reports", manage)
	reportHandler := NewReportHandler(deps.BudgetUC, deps.UtilizationUC, deps.BookingUC)
	reports.Get("/budget", reportHandler.GetBudget)
	reports.Get("/utilization", reportHandler.GetUtilization)
	reports.Get("/bookings", reportHandler.GetBookings)
	reports.Get("/bookings/pdf", reportHandler.ExportBookingsPDF)
}
