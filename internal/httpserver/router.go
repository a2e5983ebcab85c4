package httpserver

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// buildRouter wires routes for the API.
func buildRouter(logger *logrus.Logger, db *pgxpool.Pool, corsOrigin string, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(corsOrigin)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	api.POST("/login", loginHandler(deps.AccountSvc, logger))
	api.GET("/cart/:userId", getCartHandler(deps.CartSvc, logger))
	api.POST("/cart", addToCartHandler(deps.CartSvc, logger))
	api.GET("/products", listProductsHandler)
	api.GET("/users", listUsersHandler(deps.AccountSvc, logger))
	api.POST("/users", createUserHandler(deps.AccountSvc, logger))

	return router
}

func corsConfig(origin string) cors.Config {
	cfg := cors.DefaultConfig()
	if origin == "" || origin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{origin}
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	return cfg
}
