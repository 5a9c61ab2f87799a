package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"property-listing/internal/middleware"
	propertyHTTP "property-listing/internal/property/delivery/http"
	propertyRepo "property-listing/internal/property/repository/postgre"
	propertyUC "property-listing/internal/property/usecase"
	"property-listing/internal/user"
	userHTTP "property-listing/internal/user/delivery/http"
	userRepo "property-listing/internal/user/repository/postgre"
	userUC "property-listing/internal/user/usecase"
)

// setupUserDomain wires the user store and registers /api/v1/auth.
func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup) user.UseCase {
	repo := userRepo.New(srv.postgresDB, srv.l)
	uc := userUC.New(repo, srv.scopeManager, srv.l)
	userHTTP.RegisterRoutes(api, userHTTP.New(srv.l, uc))

	srv.l.Infof(ctx, "User domain registered")
	return uc
}

// setupPropertyDomain wires the property domain and registers /api/v1/properties.
func (srv HTTPServer) setupPropertyDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, users user.UseCase) error {
	// 1. Repository
	repo := propertyRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := propertyUC.New(srv.l, repo, users, srv.publisher, propertyUC.Options{
		CacheSize: srv.cache.SlugSize,
		CacheTTL:  srv.cache.SlugTTL,
	})

	// 3. HTTP Handler
	h := propertyHTTP.New(srv.l, uc)

	// 4. Routes
	propertyHTTP.RegisterRoutes(api, h, mw.Auth())

	if srv.publisher == nil {
		srv.l.Infof(ctx, "Property domain registered (events disabled)")
	} else {
		srv.l.Infof(ctx, "Property domain registered")
	}
	return nil
}
