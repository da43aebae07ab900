package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-shop-api/internal/application/auth"
	"github.com/go-shop-api/internal/application/catalog"
	"github.com/go-shop-api/internal/application/category"
	"github.com/go-shop-api/internal/application/phonekey"
	"github.com/go-shop-api/internal/application/user"
	"github.com/go-shop-api/internal/config"
	"github.com/go-shop-api/internal/domain"
	"github.com/go-shop-api/internal/transport/http/handler"
	appmiddleware "github.com/go-shop-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10 — applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	codes := phonekey.StaticCodeChannel{Code: cfg.DevConfirmationCode, SMS: deps.SMSSender}
	phoneKeySvc := phonekey.NewService(deps.PhoneKeyRepo, codes)
	authSvc := auth.NewService(deps.UserRepo, phoneKeySvc, deps.JWTProvider)
	userSvc := user.NewService(deps.UserRepo)
	categorySvc := category.NewService(deps.CategoryRepo)
	brandSvc := catalog.NewBrandService(deps.BrandRepo)
	manufacturerSvc := catalog.NewManufacturerService(deps.ManufacturerRepo)
	countrySvc := catalog.NewCountryService(deps.CountryRepo)
	productSvc := catalog.NewProductService(deps.ProductRepo, deps.CategoryRepo, deps.CountryRepo, deps.BrandRepo, deps.ManufacturerRepo)

	healthH := handler.NewHealthHandler()
	phoneKeyH := handler.NewPhoneKeyHandler(phoneKeySvc)
	authH := handler.NewAuthHandler(authSvc)
	userH := handler.NewUserHandler(userSvc, authSvc)
	categoryH := handler.NewCategoryHandler(categorySvc)
	brandH := handler.NewBrandHandler(brandSvc)
	manufacturerH := handler.NewManufacturerHandler(manufacturerSvc)
	countryH := handler.NewCountryHandler(countrySvc)
	productH := handler.NewProductHandler(productSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)

		r.With(sensitiveRL.Limit).Post("/phone-keys", phoneKeyH.Create)
		r.Get("/phone-keys/{key}", phoneKeyH.Get)
		r.With(sensitiveRL.Limit).Post("/phone-keys/verify", phoneKeyH.Verify)

		r.With(sensitiveRL.Limit).Post("/auth/register", authH.Register)
		r.With(sensitiveRL.Limit).Post("/auth/login", authH.Login)
		r.With(sensitiveRL.Limit).Post("/auth/reset-password", authH.ResetPassword)
		r.Get("/users/check", userH.CheckPhone)

		// Catalog reads are public: the storefront browses anonymously.
		r.Get("/categories", categoryH.ListRoots)
		r.Get("/categories/{id}", categoryH.Get)
		r.Get("/brands", brandH.List)
		r.Get("/brands/{id}", brandH.Get)
		r.Get("/manufacturers", manufacturerH.List)
		r.Get("/manufacturers/{id}", manufacturerH.Get)
		r.Get("/countries", countryH.List)
		r.Get("/countries/{id}", countryH.Get)
		r.Get("/products", productH.List)
		r.Get("/products/{id}", productH.Get)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/users/me", userH.Me)
			r.Put("/users/me", userH.UpdateMe)

			// Admin-only catalog writes
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(domain.RoleAdmin))

				r.Post("/categories", categoryH.Create)
				r.Put("/categories/{id}", categoryH.Update)
				r.Delete("/categories/{id}", categoryH.Delete)

				r.Post("/brands", brandH.Create)
				r.Put("/brands/{id}", brandH.Update)
				r.Delete("/brands/{id}", brandH.Delete)

				r.Post("/manufacturers", manufacturerH.Create)
				r.Put("/manufacturers/{id}", manufacturerH.Update)
				r.Delete("/manufacturers/{id}", manufacturerH.Delete)

				r.Post("/products", productH.Create)
				r.Put("/products/{id}", productH.Update)
				r.Delete("/products/{id}", productH.Delete)
			})
		})
	})

	return r
}
