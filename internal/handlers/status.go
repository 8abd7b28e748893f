package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const errGetStatus = "failed to load connection state"

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Current connection state
// @Description  Latest connectivity snapshot: online flag plus the open outage start time, if any.
// @Tags         status
// @Produce      json
// @Success      200  {object}  models.ConnectionState
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/status [get]
// @Security     BearerAuth
func (h *Handler) getStatus(c *gin.Context) {
	st, err := h.services.Monitoring.GetState(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetStatus, "status_load_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}
