package httpserver

import (
	"context"
	"net/http"
	"time"

	"localstore/internal/domain"
	acctsvc "localstore/internal/service/account"
	cartsvc "localstore/internal/service/cart"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// AccountService is the identity surface the handlers depend on.
type AccountService interface {
	Resolve(ctx context.Context, username, password string) (*acctsvc.Resolution, error)
	Create(ctx context.Context, in acctsvc.CreateInput) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
}

// CartService is the cart surface the handlers depend on.
type CartService interface {
	Add(ctx context.Context, accountID string, in cartsvc.AddInput) error
	Get(ctx context.Context, accountID string) ([]domain.CartLine, error)
}

// Deps bundles the services the router needs.
type Deps struct {
	AccountSvc AccountService
	CartSvc    CartService
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *logrus.Logger
	db         *pgxpool.Pool
}

// New builds a Server with the API routes wired up.
func New(addr string, logger *logrus.Logger, db *pgxpool.Pool, corsOrigin string, deps Deps) (*Server, error) {
	router := buildRouter(logger, db, corsOrigin, deps)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
		db:         db,
	}, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not configured"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
