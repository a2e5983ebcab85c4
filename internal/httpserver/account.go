package httpserver

import (
	"errors"
	"net/http"

	"localstore/internal/domain"
	acctsvc "localstore/internal/service/account"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
}

// loginHandler authenticates an existing account or provisions a new
// one for an unseen username. Created and authenticated results carry
// the same body; only the status code differs.
func loginHandler(svc AccountService, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "username and password required"})
			return
		}

		res, err := svc.Resolve(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, acctsvc.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
				return
			}
			logger.WithError(err).Error("login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal Server Error"})
			return
		}

		status := http.StatusOK
		if res.Outcome == acctsvc.OutcomeCreated {
			status = http.StatusCreated
		}
		c.JSON(status, loginResponse{Success: true, UserID: res.AccountID})
	}
}

type createUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	IsAdmin  bool   `json:"isAdmin"`
}

func createUserHandler(svc AccountService, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
			return
		}

		created, err := svc.Create(c.Request.Context(), acctsvc.CreateInput{
			Username: req.Username,
			Password: req.Password,
			IsAdmin:  req.IsAdmin,
		})
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
				return
			}
			logger.WithError(err).Error("create user failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func listUsersHandler(svc AccountService, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		accounts, err := svc.List(c.Request.Context())
		if err != nil {
			logger.WithError(err).Error("list users failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
		if accounts == nil {
			accounts = []domain.Account{}
		}
		c.JSON(http.StatusOK, accounts)
	}
}
