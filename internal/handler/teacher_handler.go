package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/studio-catalog/internal/service"
	appErrors "github.com/noah-isme/studio-catalog/pkg/errors"
	"github.com/noah-isme/studio-catalog/pkg/logger"
	"github.com/noah-isme/studio-catalog/pkg/response"
)

const viewDetailed = "detailed"

// TeacherHandler exposes the teacher catalog over HTTP.
type TeacherHandler struct {
	catalog *service.CatalogService
	logger  *zap.Logger
}

// NewTeacherHandler constructs a new TeacherHandler.
func NewTeacherHandler(catalog *service.CatalogService, logger *zap.Logger) *TeacherHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherHandler{catalog: catalog, logger: logger}
}

// List godoc
// @Summary List teachers
// @Tags Teachers
// @Produce json
// @Param view query string false "Set to detailed to include activity references"
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /teachers [get]
func (h *TeacherHandler) List(c *gin.Context) {
	store := h.catalog.TeacherStore(logger.ForRequest(h.logger, c))
	state := store.FetchAll(c.Request.Context())
	if state.LastError != nil {
		response.Error(c, state.LastError)
		return
	}
	meta := map[string]interface{}{"count": len(state.Items)}
	if strings.EqualFold(c.Query("view"), viewDetailed) {
		response.JSON(c, http.StatusOK, service.TeachersToCardItemsWithActivities(state.Items), meta)
		return
	}
	response.JSON(c, http.StatusOK, service.TeachersToCardItems(state.Items), meta)
}

// Highlighted godoc
// @Summary List teachers leading highlighted activities
// @Tags Teachers
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /teachers/highlighted [get]
func (h *TeacherHandler) Highlighted(c *gin.Context) {
	store := h.catalog.TeacherStore(logger.ForRequest(h.logger, c))
	state := store.FetchHighlighted(c.Request.Context())
	if state.LastError != nil {
		response.Error(c, state.LastError)
		return
	}
	cards := service.TeachersToCardItems(state.Filtered)
	response.JSON(c, http.StatusOK, cards, map[string]interface{}{"count": len(cards)})
}

// Get godoc
// @Summary Get teacher detail
// @Tags Teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /teachers/{id} [get]
func (h *TeacherHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid teacher id"))
		return
	}
	store := h.catalog.TeacherStore(logger.ForRequest(h.logger, c))
	state := store.FetchByID(c.Request.Context(), id)
	if state.LastError != nil {
		response.Error(c, state.LastError)
		return
	}
	if state.Selected == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "teacher not found"))
		return
	}
	response.JSON(c, http.StatusOK, state.Selected)
}
