// @title Internship Placement Portal API
// @version 1.0
// @description Backend for the department internship/co-op placement portal.
// @host localhost:8000
// @BasePath /

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	_ "placement-backend/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"placement-backend/bootstrap"
	"placement-backend/config"
	"placement-backend/database"
	"placement-backend/internal/middleware"
	"placement-backend/internal/repository"
	"placement-backend/internal/routes"
	"placement-backend/internal/services"
	"placement-backend/internal/store"
	"placement-backend/internal/syncer"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: .env file not found, using system environment variables")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		panic("JWT_SECRET is required")
	}

	// Load configuration
	cfg := config.LoadConfig()
	if len(cfg.Passphrases) == 0 {
		panic("ADMIN_PASSPHRASES is required")
	}

	// The allow-list is compared through bcrypt; hash once at startup.
	passphraseHashes := make([][]byte, 0, len(cfg.Passphrases))
	for _, p := range cfg.Passphrases {
		hash, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash admin passphrase: %v", err)
		}
		passphraseHashes = append(passphraseHashes, hash)
	}

	// Connect to the database
	client := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	defer client.Disconnect(nil)

	db := client.Database(cfg.MongoDB)

	if err := bootstrap.EnsureSlotIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	// Local store: seed from slots, falling back to bundled defaults.
	st := store.New(repository.NewSlotRepository(db))
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		st.LoadAll(ctx, bootstrap.DefaultData())
		cancel()
	}

	gateway := syncer.New(cfg.SyncEndpoint, &http.Client{Timeout: 30 * time.Second}, st)

	// Best-effort initial read-repair from the remote store. A failure
	// just leaves the seeded collections in place.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := gateway.FetchAll(ctx); err != nil {
			log.Printf("sync: initial fetch failed: %v", err)
		}
	}()

	siteSvc := &services.SiteService{Store: st, Gateway: gateway}
	statusSvc := &services.StatusService{Store: st, Gateway: gateway}
	scheduleSvc := &services.ScheduleService{Store: st, Gateway: gateway}
	formSvc := &services.FormService{Store: st, Gateway: gateway}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // uploaded PDFs travel base64-encoded
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // or specify your frontend URL
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger API document
	app.Get("/docs/*", swagger.HandlerDefault)

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	// Get JWT with passphrase login
	routes.SetupAuth(app, secret, passphraseHashes)

	adminOnly := middleware.AdminOnly(secret)

	// Routes
	routes.SetupRoutesSite(app, siteSvc, adminOnly)
	routes.SetupRoutesStatus(app, statusSvc, adminOnly)
	routes.SetupRoutesSchedule(app, scheduleSvc, adminOnly)
	routes.SetupRoutesForm(app, formSvc, adminOnly)
	routes.SetupRoutesReport(app, statusSvc, adminOnly)
	routes.SetupRoutesSync(app, gateway, adminOnly)
	routes.SetupRoutesPreferences(app, st)

	// RUN SERVER
	log.Fatal(app.Listen(":" + cfg.Port))
}
