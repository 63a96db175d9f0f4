package main

import (
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/MananRadadiya/Gaming-Store-sub001/internal/address"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/builder"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/cart"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/catalog"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/config"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/logging"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/metrics"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/order"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/savedbuild"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/user"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/wishlist"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = uuid.NewString()
		logging.Warn().Msg("JWT_SECRET is not set, using a random secret; tokens will not survive a restart")
	}

	st := memoryStores()
	if cfg.DatabaseURL != "" {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()

		var err error
		st, err = postgresStores(db)
		if err != nil {
			logging.Fatal().Err(err).Msg("database setup failed")
		}
		logging.Info().Msg("using postgres storage")
	} else {
		logging.Info().Msg("DATABASE_URL is not set, using in-memory storage")
	}

	app := newApp(cfg, st)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logging.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logging.Error().Err(err).Msg("shutdown failed")
		}
	}()

	logging.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := app.Listen(cfg.Addr); err != nil {
		logging.Fatal().Err(err).Msg("server stopped")
	}
}

// newApp wires every handler over the given stores. Public routes are
// registered before the JWT middleware, protected ones after it.
func newApp(cfg config.Config, st stores) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "gaming-store",
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
	})
	setupCORS(app)
	app.Use(logging.RequestLogger())
	app.Use(metrics.Middleware())
	metrics.RegisterRoutes(app)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	catalogService := catalog.NewService(st.catalog)
	builderService := builder.NewService(catalogService, builder.DefaultProfiles(), builder.Slider{
		Min:  cfg.BudgetMin,
		Max:  cfg.BudgetMax,
		Step: cfg.BudgetStep,
	})

	catalogHandler := catalog.NewHandler(catalogService, cfg.AllowResetCatalog)
	builderHandler := builder.NewHandler(builderService)
	userHandler := user.NewHandler(user.NewService(st.users), cfg.JWTSecret)
	cartService := cart.NewService(st.carts, catalogService, builderService)
	cartHandler := cart.NewHandler(cartService)
	addressService := address.NewService(st.addresses)
	addressHandler := address.NewHandler(addressService)
	orderHandler := order.NewHandler(order.NewService(st.orders, cartService, addressService))
	wishlistHandler := wishlist.NewHandler(wishlist.NewService(st.wishlists, catalogService))
	buildHandler := savedbuild.NewHandler(savedbuild.NewService(st.builds, builderService, cfg.SavedBuildsLimit))

	catalogHandler.RegisterPublicRoutes(app)
	builderHandler.RegisterPublicRoutes(app)
	userHandler.RegisterPublicRoutes(app)

	app.Use(user.Middleware(cfg.JWTSecret))

	userHandler.RegisterProtectedRoutes(app)
	catalogHandler.RegisterProtectedRoutes(app, user.RequireAdmin(cfg.CatalogAdmins))
	cartHandler.RegisterProtectedRoutes(app)
	wishlistHandler.RegisterProtectedRoutes(app)
	buildHandler.RegisterProtectedRoutes(app)
	addressHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)

	return app
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, " + logging.RequestIDHeader,
		ExposeHeaders: logging.RequestIDHeader,
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		logging.Fatal().Err(err).Msg("open database")
	}

	if err := db.Ping(); err != nil {
		logging.Fatal().Err(err).Msg("ping database")
	}

	return db
}
