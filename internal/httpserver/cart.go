package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"localstore/internal/domain"
	cartsvc "localstore/internal/service/cart"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// productID accepts either a JSON number or a numeric string, since
// clients are not consistent about which they send.
type productID int64

func (p *productID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return errors.New("productId required")
	}
	s = strings.Trim(s, `"`)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid productId %q", s)
	}
	*p = productID(n)
	return nil
}

type addToCartRequest struct {
	UserID    string    `json:"userId" binding:"required"`
	ProductID productID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
}

func addToCartHandler(svc CartService, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
			return
		}

		err := svc.Add(c.Request.Context(), req.UserID, cartsvc.AddInput{
			ProductID: int64(req.ProductID),
			Quantity:  req.Quantity,
			Name:      req.Name,
			Price:     req.Price,
		})
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"success": true})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, cartsvc.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		default:
			logger.WithError(err).Error("add to cart failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		}
	}
}

func getCartHandler(svc CartService, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		cart, err := svc.Get(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
				return
			}
			logger.WithError(err).Error("fetch cart failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal Server Error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
	}
}
