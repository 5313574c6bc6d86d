package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"ember_sculpt/internal/burnchart"

	"github.com/gin-gonic/gin"
)

const errRenderChart = "failed to render chart"

// @Summary      Burn chart
// @Description  PNG of the remaining height over the burn window with a marker at the playhead.
// @Tags         candle
// @Produce      png
// @Param        width   query     int  false  "Image width in px (max 2000)"   default(800)
// @Param        height  query     int  false  "Image height in px (max 1200)"  default(400)
// @Success      200     {file}    file
// @Failure      401     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /api/v1/candle/chart.png [get]
// @Security     BearerAuth
func (h *Handler) getChart(c *gin.Context) {
	width, _ := strconv.Atoi(c.Query("width"))
	height, _ := strconv.Atoi(c.Query("height"))

	st, err := h.services.Monitoring.GetState(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "candle_get_state_failed", err)
		return
	}

	var buf bytes.Buffer
	if err := burnchart.RenderPNG(&buf, st, width, height); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errRenderChart, "candle_chart_failed", err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
