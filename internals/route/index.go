package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	authMiddleware "belajarku_backend/internals/middlewares/auth"
	routeDetails "belajarku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	api := app.Group("/api")

	// ===================== WEBHOOK =====================
	// Notifikasi Midtrans, tanpa auth (ada di skipPaths middleware)
	log.Println("[INFO] Setting up webhook routes...")
	routeDetails.WebhookRoutes(api, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := api.Group("/public")
	routeDetails.PublicRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := api.Group("/u", authMiddleware.AuthMiddleware(db))
	routeDetails.UserRoutes(private, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := api.Group("/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Hanya admin yang boleh mengakses fitur ini", constants.AdminAndAbove...),
	)
	routeDetails.AdminRoutes(admin, db)

	// Uptime sederhana untuk monitoring
	app.Get("/uptime", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"uptime": time.Since(startTime).String(),
		})
	})
}
