package v1

import (
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/api/v1/handlers"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/middleware"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/gofiber/fiber/v2"
)

// File ini mendaftarkan semua rute API versi 1 (/api/v1).

// Handlers mengelompokkan semua handler yang dibutuhkan SetupRoutes.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Admin       *handlers.AdminHandler
	Destination *handlers.DestinationHandler
	Visit       *handlers.VisitHandler
	Unlock      *handlers.UnlockHandler
	Report      *handlers.ReportHandler
	Reference   *handlers.ReferenceHandler
	Seed        *handlers.SeedHandler
	Health      *handlers.HealthHandler
	Stream      *handlers.StreamHandler
}

// SetupRoutes mendaftarkan semua rute API v1. seedToken kosong berarti seeding
// hanya bisa dipicu admin.
func SetupRoutes(app *fiber.App, h Handlers, tokens middleware.TokenValidator, seedToken string) {
	api := app.Group("/api/v1")

	admin := string(models.RoleAdmin)
	pengelola := string(models.RolePengelola)
	protected := middleware.Protected(tokens)

	// =========================================================================
	// Publik
	// =========================================================================
	api.Post("/auth/login", h.Auth.Login)
	api.Get("/health", h.Health.Health)
	// POST /api/v1/seed - admin JWT atau header X-Seed-Token
	api.Post("/seed", middleware.SeedTrigger(tokens, seedToken), h.Seed.RunSeed)

	// =========================================================================
	// Semua pengguna yang login (admin dan pengelola)
	// =========================================================================
	api.Get("/auth/me", protected, h.Auth.Me)

	dest := api.Group("/destinations", protected)
	{
		dest.Get("/", h.Destination.ListDestinations)
		dest.Get("/:destId", h.Destination.GetDestination)

		// Akses data kunjungan dibatasi penugasan di service.
		dest.Get("/:destId/visits", h.Visit.ListVisits)
		dest.Get("/:destId/visits/:year/:month", h.Visit.GetVisit)
		dest.Put("/:destId/visits/:year/:month", h.Visit.UpdateVisit)
	}

	api.Get("/reports/yearly", protected, h.Report.YearlyReport)
	api.Post("/summaries", protected, h.Report.GenerateSummary)

	unlock := api.Group("/unlock-requests", protected)
	{
		unlock.Post("/", middleware.Authorize(pengelola), h.Unlock.SubmitRequest)
		unlock.Get("/", h.Unlock.ListRequests)
	}

	api.Get("/categories", protected, h.Reference.ListCategories)
	api.Get("/countries", protected, h.Reference.ListCountries)
	api.Get("/settings", protected, h.Reference.GetSettings)

	// SSE; token boleh lewat ?access_token= karena EventSource tidak mengirim header.
	stream := api.Group("/stream", protected)
	{
		stream.Get("/visits", h.Stream.StreamVisits)
		stream.Get("/notifications", h.Stream.StreamNotifications)
	}

	// =========================================================================
	// Admin
	// =========================================================================
	adm := api.Group("/admin", protected, middleware.Authorize(admin))
	{
		// --- Pengguna ---
		adm.Get("/users", h.Admin.GetAllUsers)
		adm.Post("/users", h.Admin.CreateUser)
		adm.Patch("/users/:uid/role", h.Admin.ChangeRole)
		adm.Patch("/users/:uid/status", h.Admin.ChangeStatus)
		adm.Patch("/users/:uid/destinations", h.Admin.AssignDestinations)

		// --- Destinasi ---
		adm.Post("/destinations", h.Destination.CreateDestination)
		adm.Patch("/destinations/:destId", h.Destination.UpdateDestination)
		adm.Post("/destinations/:destId/image", h.Destination.UploadImage)
		adm.Patch("/destinations/:destId/visits/:year/:month/lock", h.Visit.SetLock)

		// --- Permintaan buka kunci ---
		adm.Patch("/unlock-requests/:requestId/decision", h.Unlock.DecideRequest)

		// --- Referensi ---
		adm.Post("/categories", h.Reference.CreateCategory)
		adm.Put("/settings", h.Reference.UpdateSettings)
	}
}
