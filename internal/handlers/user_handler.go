package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pitchplan_backend/internal/middleware"
	"pitchplan_backend/internal/services"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	user := rg.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/stats", h.GetStats)
	}
}

// GetStats returns the caller's usage summary for the dashboard.
// @Summary  Account statistics
// @Tags     user
// @Produce  json
// @Success  200 {object} dto.StatsResponse
// @Router   /api/v1/user/stats [get]
func (h *UserHandler) GetStats(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	stats, err := h.userService.GetStats(userID, time.Now())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
