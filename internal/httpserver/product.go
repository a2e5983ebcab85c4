package httpserver

import (
	"net/http"

	"localstore/internal/catalog"

	"github.com/gin-gonic/gin"
)

func listProductsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.List())
}
