package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pitchplan_backend/internal/config"
	"pitchplan_backend/internal/generator"
	"pitchplan_backend/internal/middleware"
	"pitchplan_backend/internal/plan"
	"pitchplan_backend/internal/services"
)

type SessionHandler struct {
	*BaseHandler
	generationService services.GenerationService
	sessionService    services.SessionService
}

func NewSessionHandler(base *BaseHandler, generationService services.GenerationService, sessionService services.SessionService) *SessionHandler {
	return &SessionHandler{
		BaseHandler:       base,
		generationService: generationService,
		sessionService:    sessionService,
	}
}

func (h *SessionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// The loading phrases feed the client's progress overlay; no auth needed.
	rg.GET("/loading-phrases", h.LoadingPhrase)

	sessions := rg.Group("/sessions")
	sessions.Use(middleware.AuthMiddleware())
	{
		sessions.POST("/generate", h.Generate)
		sessions.POST("", h.Save)
		sessions.GET("", h.List)
		sessions.GET("/:id", h.Get)
		sessions.DELETE("/:id", h.Delete)
	}
}

// Generate runs the quota-gated generation flow and returns the document
// without persisting it; saving is a separate explicit call.
// @Summary  Generate a training session
// @Tags     sessions
// @Accept   json
// @Produce  json
// @Success  200 {object} plan.Session
// @Failure  400 {object} apperrors.ErrorResponse
// @Failure  403 {object} apperrors.ErrorResponse
// @Router   /api/v1/sessions/generate [post]
func (h *SessionHandler) Generate(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req plan.Request
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	// Development escape hatch: ?mock=false forces the live model even when
	// the mock generator is wired as primary.
	forceLive := config.GetConfig().IsDevelopment() && c.Query("mock") == "false"

	session, err := h.generationService.Generate(c.Request.Context(), userID, req, forceLive)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// Save persists a generated document for the caller.
// @Summary  Save a training session
// @Tags     sessions
// @Accept   json
// @Produce  json
// @Success  201 {object} dto.SessionRecord
// @Router   /api/v1/sessions [post]
func (h *SessionHandler) Save(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var doc plan.Session
	if !h.BindAndValidateJSON(c, &doc) {
		return
	}

	record, err := h.sessionService.Save(userID, &doc)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// List returns the caller's saved sessions, newest first.
// @Summary  List saved sessions
// @Tags     sessions
// @Produce  json
// @Success  200 {array} dto.SessionRecord
// @Router   /api/v1/sessions [get]
func (h *SessionHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	records, err := h.sessionService.List(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// Get returns one saved session. Sessions owned by other users are reported
// as absent.
// @Summary  Get a saved session
// @Tags     sessions
// @Produce  json
// @Success  200 {object} dto.SessionRecord
// @Failure  404 {object} apperrors.ErrorResponse
// @Router   /api/v1/sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	record, err := h.sessionService.Get(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Delete removes a saved session owned by the caller.
// @Summary  Delete a saved session
// @Tags     sessions
// @Success  204
// @Failure  404 {object} apperrors.ErrorResponse
// @Router   /api/v1/sessions/{id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.sessionService.Delete(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// LoadingPhrase returns a random phrase for the generation progress overlay.
func (h *SessionHandler) LoadingPhrase(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"phrase": generator.LoadingPhrase()})
}
