package handlers

import (
	"net/http"

	"github.com/SscSPs/tax_compliance_app/internal/dto"
	"github.com/SscSPs/tax_compliance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Landing page
// @Description Returns the signed-in user, if any, and pending flash messages.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(c *gin.Context) {
	resp := gin.H{
		"message": "Tax & Compliance Administration",
		"flashes": middleware.PopFlashes(c),
	}
	if user, ok := middleware.GetUserFromContext(c); ok {
		resp["user"] = dto.ToUserResponse(&user)
	}
	c.JSON(http.StatusOK, resp)
}

func registerHomeRoutes(rg *gin.RouterGroup) {
	rg.GET("/", getHome)
}
