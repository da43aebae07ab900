package http

import (
	"github.com/go-shop-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/go-shop-api/internal/infrastructure/jwt"
	"github.com/go-shop-api/internal/infrastructure/sns"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo         *dynamo.UserRepo
	PhoneKeyRepo     *dynamo.PhoneKeyRepo
	CategoryRepo     *dynamo.CategoryRepo
	BrandRepo        *dynamo.BrandRepo
	ManufacturerRepo *dynamo.ManufacturerRepo
	CountryRepo      *dynamo.CountryRepo
	ProductRepo      *dynamo.ProductRepo
	SMSSender        sns.SMSSender // nil when SNS is not configured
	JWTProvider      *jwtinfra.Provider
}
