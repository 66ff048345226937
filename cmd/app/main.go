package main

import (
	"database/sql"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/modacart/storefront-backend/internal/cart"
	"github.com/modacart/storefront-backend/internal/category"
	"github.com/modacart/storefront-backend/internal/checkout"
	"github.com/modacart/storefront-backend/internal/config"
	"github.com/modacart/storefront-backend/internal/coupon"
	"github.com/modacart/storefront-backend/internal/order"
	"github.com/modacart/storefront-backend/internal/pricing"
	"github.com/modacart/storefront-backend/internal/product"
	"github.com/modacart/storefront-backend/internal/session"
	"github.com/modacart/storefront-backend/internal/theme"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	activeTheme := theme.Get(cfg.Theme)
	seed := theme.SeedFor(activeTheme.Key)

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	ensureSchema(db)
	seedIfEmpty(db, seed)

	productService := product.NewService(product.NewPostgresRepository(db))
	productHandler := product.NewHandler(productService)
	categoryHandler := category.NewHandler(category.NewService(category.NewPostgresRepository(db)))
	themeHandler := theme.NewHandler(activeTheme)
	sessionHandler := session.NewHandler(cfg.JWTSecret, cfg.SessionTTL)

	cartService := cart.NewService(cart.NewPostgresRepository(db))
	couponService := coupon.NewService(coupon.NewPostgresRules(db))
	pricingService := pricing.NewService(cartService, productService, couponService, activeTheme)
	orderService := order.NewService(order.NewPostgresRepository(db))
	checkoutService := checkout.NewService(checkout.NewDraftStore(), pricingService, orderService, cartService, couponService)

	// public storefront surface: session issuance, theme, catalog browsing
	sessionHandler.RegisterPublicRoutes(app)
	themeHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)

	// everything below requires a session token
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	cart.NewHandler(cartService).RegisterProtectedRoutes(app)
	coupon.NewHandler(couponService).RegisterProtectedRoutes(app)
	pricing.NewHandler(pricingService).RegisterProtectedRoutes(app)
	checkout.NewHandler(checkoutService).RegisterProtectedRoutes(app)
	order.NewHandler(orderService).RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)

	logrus.WithFields(logrus.Fields{"addr": cfg.Addr, "theme": activeTheme.Key, "store": activeTheme.StoreName}).Info("starting storefront")
	if err := app.Listen(cfg.Addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(c *fiber.Ctx) error {
	logrus.WithFields(logrus.Fields{"method": c.Method(), "path": c.Path()}).Debug("request")
	return c.Next()
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		logrus.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		logrus.WithError(err).Fatal("could not open database")
	}
	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("could not reach database")
	}
	return db
}

func ensureSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
			product_id SERIAL PRIMARY KEY,
			product_name TEXT NOT NULL,
			product_desc TEXT,
			product_price NUMERIC NOT NULL DEFAULT 0,
			images JSONB NOT NULL DEFAULT '[]',
			category_id INT NOT NULL DEFAULT 0,
			rating NUMERIC NOT NULL DEFAULT 0,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			category_id SERIAL PRIMARY KEY,
			category_name TEXT NOT NULL,
			category_img TEXT,
			ord INT
		)`,
		`CREATE TABLE IF NOT EXISTS coupons (
			code TEXT PRIMARY KEY,
			discount_pct NUMERIC NOT NULL,
			description TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS carts (
			session_id TEXT PRIMARY KEY,
			items JSONB NOT NULL DEFAULT '{}',
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			cart JSONB NOT NULL DEFAULT '{}',
			quantity INT NOT NULL DEFAULT 0,
			subtotal NUMERIC NOT NULL DEFAULT 0,
			discount NUMERIC NOT NULL DEFAULT 0,
			shipping_price NUMERIC NOT NULL DEFAULT 0,
			grand_price NUMERIC NOT NULL DEFAULT 0,
			coupon_code TEXT,
			customer_name TEXT,
			customer_email TEXT,
			shipping_address TEXT,
			status TEXT,
			created_at TEXT,
			updated_at TEXT
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			logrus.WithError(err).Fatal("could not ensure schema")
		}
	}
}

// seedIfEmpty inserts the active theme's starter data into any table that
// has no rows yet. Existing data is never touched.
func seedIfEmpty(db *sql.DB, seed theme.Seed) {
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&n); err == nil && n == 0 {
		for _, p := range seed.Products {
			imagesJSON, err := json.Marshal(p.Images)
			if err != nil {
				continue
			}
			if _, err := db.Exec(`INSERT INTO products (product_id, product_name, product_desc, product_price, images, category_id, rating)
				VALUES ($1,$2,$3,$4,$5,$6,$7)`,
				p.ID, p.Name, p.Description, p.Price, imagesJSON, p.CategoryID, p.Rating); err != nil {
				logrus.WithError(err).WithField("product", p.Name).Warn("seed: could not insert product")
			}
		}
		if _, err := db.Exec(`SELECT setval(pg_get_serial_sequence('products','product_id'), COALESCE((SELECT MAX(product_id) FROM products), 1))`); err != nil {
			logrus.WithError(err).Warn("seed: could not bump product sequence")
		}
	}

	if err := db.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&n); err == nil && n == 0 {
		for i, cat := range seed.Categories {
			if _, err := db.Exec(`INSERT INTO categories (category_id, category_name, category_img, ord) VALUES ($1,$2,$3,$4)`,
				cat.CategoryID, cat.CategoryName, cat.CategoryImg, len(seed.Categories)-i); err != nil {
				logrus.WithError(err).WithField("category", cat.CategoryName).Warn("seed: could not insert category")
			}
		}
	}

	if err := db.QueryRow(`SELECT COUNT(*) FROM coupons`).Scan(&n); err == nil && n == 0 {
		for _, cp := range seed.Coupons {
			if _, err := db.Exec(`INSERT INTO coupons (code, discount_pct, description) VALUES ($1,$2,$3)`,
				cp.Code, cp.DiscountPercentage, cp.Description); err != nil {
				logrus.WithError(err).WithField("code", cp.Code).Warn("seed: could not insert coupon")
			}
		}
	}
}
