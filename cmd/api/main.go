package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
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

// main wires the whole storefront against in-memory repositories seeded
// from the active theme. No database required, handy for front-end work
// and demos; state resets on restart.
func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	activeTheme := theme.Get(cfg.Theme)
	seed := theme.SeedFor(activeTheme.Key)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	productService := product.NewService(product.NewInMemoryRepository(seed.Products))
	productHandler := product.NewHandler(productService)
	categoryHandler := category.NewHandler(category.NewService(category.NewInMemoryRepository(seed.Categories)))
	themeHandler := theme.NewHandler(activeTheme)
	sessionHandler := session.NewHandler(cfg.JWTSecret, cfg.SessionTTL)

	cartService := cart.NewService(cart.NewInMemoryRepository())
	couponService := coupon.NewService(coupon.NewInMemoryRules(seed.Coupons))
	pricingService := pricing.NewService(cartService, productService, couponService, activeTheme)
	orderService := order.NewService(order.NewInMemoryRepository())
	checkoutService := checkout.NewService(checkout.NewDraftStore(), pricingService, orderService, cartService, couponService)

	sessionHandler.RegisterPublicRoutes(app)
	themeHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	cart.NewHandler(cartService).RegisterProtectedRoutes(app)
	coupon.NewHandler(couponService).RegisterProtectedRoutes(app)
	pricing.NewHandler(pricingService).RegisterProtectedRoutes(app)
	checkout.NewHandler(checkoutService).RegisterProtectedRoutes(app)
	order.NewHandler(orderService).RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)

	logrus.WithFields(logrus.Fields{"addr": cfg.Addr, "theme": activeTheme.Key}).Info("starting demo storefront (in-memory, no database)")
	if err := app.Listen(cfg.Addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
