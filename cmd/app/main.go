package main

import (
	"database/sql"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"github.com/wichananm65/plant-shop/internal/category"
	"github.com/wichananm65/plant-shop/internal/config"
	"github.com/wichananm65/plant-shop/internal/pages"
	"github.com/wichananm65/plant-shop/internal/product"
	"github.com/wichananm65/plant-shop/internal/search"
	"github.com/wichananm65/plant-shop/internal/storage"
	"github.com/wichananm65/plant-shop/internal/visitor"
)

func main() {
	cfg := config.Load()
	app := fiber.New()
	setupCORS(app)

	var (
		productRepo product.Repository = product.NewInMemoryRepository(product.DefaultCatalog)
		storageRepo storage.Repository = storage.NewInMemoryRepository()
	)
	if cfg.DatabaseURL != "" {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()
		mustMigrate(db)
		productRepo = product.NewPostgresRepository(db)
		storageRepo = storage.NewPostgresRepository(db)
	} else {
		logger.Info("DATABASE_URL not set, using in-memory repositories")
	}

	productService := product.NewService(productRepo)
	productHandler := product.NewHandler(productService)

	categoryService := category.NewService(productService)
	categoryHandler := category.NewHandler(categoryService)

	storageService := storage.NewService(storageRepo)
	storageHandler := storage.NewHandler(storageService)

	issuer := visitor.NewIssuer(cfg.JWTSecret)
	visitorHandler := visitor.NewHandler(issuer)

	// pages double as the search handler's page source
	pageHandler := pages.NewHandler(productService, categoryService, productService, cfg.ListingPath)
	searchHandler := search.NewHandler(productService, pageHandler, cfg.ListingPath).
		WithRecorders(func(visitorID string) search.Recorder {
			return storageService.Bucket(visitorID)
		})

	app.Static("/img", "./public/img")
	app.Static("/css", "./public/css")

	app.Use(requestLogger)

	pageHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	visitorHandler.RegisterPublicRoutes(app)
	searchHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		// only storage and visitor search need a visitor token
		Filter: func(c *fiber.Ctx) bool {
			p := c.Path()
			return !strings.HasPrefix(p, "/api/v1/storage/") && p != "/api/v1/visitor/search"
		},
	}))

	storageHandler.RegisterProtectedRoutes(app)
	searchHandler.RegisterProtectedRoutes(app)

	logger.Info("Starting plant shop", "addr", cfg.Addr, "listing", cfg.ListingPath)
	if err := app.Listen(cfg.Addr); err != nil {
		logger.LogErr(serr.Wrap(err, "server stopped"))
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

// mustMigrate creates the tables the repositories read and seeds the catalog
// when it is empty.
func mustMigrate(db *sql.DB) {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS catalog_product (
		product_id SERIAL PRIMARY KEY,
		category_tag TEXT NOT NULL,
		product_name TEXT,
		product_price TEXT,
		product_img TEXT,
		product_alt TEXT,
		ord INT NOT NULL DEFAULT 0
	)`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS visitor_storage (
		visitor_id TEXT NOT NULL,
		item_key TEXT NOT NULL,
		item_value TEXT,
		updated_at TIMESTAMP NOT NULL DEFAULT now(),
		PRIMARY KEY (visitor_id, item_key)
	)`); err != nil {
		panic(err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM catalog_product`).Scan(&count); err != nil {
		logger.LogErr(serr.Wrap(err, "catalog count failed"))
		return
	}
	if count == 0 {
		if err := product.NewPostgresRepository(db).Reset(product.Catalog()); err != nil {
			logger.LogErr(err, "catalog seed failed")
			return
		}
		logger.Info("Seeded catalog", "count", len(product.DefaultCatalog))
	}
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	logger.Debug("Request", "method", c.Method(), "url", c.OriginalURL(),
		"status", c.Response().StatusCode(), "elapsed", time.Since(start).String())
	return err
}
