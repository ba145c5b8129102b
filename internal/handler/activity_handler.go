package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/studio-catalog/internal/service"
	appErrors "github.com/noah-isme/studio-catalog/pkg/errors"
	"github.com/noah-isme/studio-catalog/pkg/logger"
	"github.com/noah-isme/studio-catalog/pkg/response"
)

// ActivityHandler exposes the activity catalog over HTTP.
type ActivityHandler struct {
	catalog *service.CatalogService
	exports *service.ExportService
	logger  *zap.Logger
}

// NewActivityHandler constructs an ActivityHandler. A nil export service disables the export route.
func NewActivityHandler(catalog *service.CatalogService, exports *service.ExportService, logger *zap.Logger) *ActivityHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityHandler{catalog: catalog, exports: exports, logger: logger}
}

// List godoc
// @Summary List activities
// @Tags Activities
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	store := h.catalog.ActivityStore(logger.ForRequest(h.logger, c))
	state := store.FetchAll(c.Request.Context())
	if state.LastError != nil {
		response.Error(c, state.LastError)
		return
	}
	cards := service.ActivitiesToClassCards(state.Items)
	response.JSON(c, http.StatusOK, cards, map[string]interface{}{"count": len(cards)})
}

// Highlighted godoc
// @Summary List highlighted activities
// @Tags Activities
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /activities/highlighted [get]
func (h *ActivityHandler) Highlighted(c *gin.Context) {
	store := h.catalog.ActivityStore(logger.ForRequest(h.logger, c))
	state := store.FetchHighlighted(c.Request.Context())
	if state.LastError != nil {
		response.Error(c, state.LastError)
		return
	}
	cards := service.ActivitiesToClassCards(state.Filtered)
	response.JSON(c, http.StatusOK, cards, map[string]interface{}{"count": len(cards)})
}

// Get godoc
// @Summary Get activity detail
// @Tags Activities
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /activities/{id} [get]
func (h *ActivityHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid activity id"))
		return
	}
	store := h.catalog.ActivityStore(logger.ForRequest(h.logger, c))
	state := store.FetchByID(c.Request.Context(), id)
	if state.LastError != nil {
		response.Error(c, state.LastError)
		return
	}
	if state.Selected == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "activity not found"))
		return
	}
	response.JSON(c, http.StatusOK, state.Selected)
}

// Export godoc
// @Summary Download the class timetable
// @Tags Activities
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /activities/export [get]
func (h *ActivityHandler) Export(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrDisabled, "timetable export is disabled"))
		return
	}
	store := h.catalog.ActivityStore(logger.ForRequest(h.logger, c))
	state := store.FetchAll(c.Request.Context())
	if state.LastError != nil {
		response.Error(c, state.LastError)
		return
	}
	file, err := h.exports.Render(state.Items, c.DefaultQuery("format", service.FormatCSV))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Payload)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
