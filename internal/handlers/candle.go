package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"ember_sculpt/internal/configio"
	"ember_sculpt/internal/models"
	"ember_sculpt/internal/service"
	"ember_sculpt/internal/solver"

	"github.com/gin-gonic/gin"
)

const (
	statusOK       = "ok"
	statusEdited   = "edited"
	statusReset    = "reset"
	statusImported = "imported"

	errGetState        = "failed to load state"
	errEditCandle      = "failed to apply edit"
	errResetCandle     = "failed to reset candle"
	errExportConfig    = "failed to export config"
	errImportConfig    = "failed to import config"
	errInvalidBodyPref = "invalid body: "

	maxConfigBytes = 1 << 20
	maxEditBytes   = 64 << 10
)

// logAndJSONError logs err under logKey and answers with userMsg.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondWithSnapshot answers with a status and the derived view of st.
func respondWithSnapshot(c *gin.Context, status string, st models.BurnState) {
	c.JSON(http.StatusOK, gin.H{
		"status":   status,
		"snapshot": solver.Snapshot(st),
	})
}

// number accepts a JSON number or numeric text such as "12" or "4.5in".
// Text without a numeric prefix reads as 0.
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	text := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &text); err != nil {
			return err
		}
	}
	*n = number(solver.ParseNumber(text))
	return nil
}

func (n *number) float() *float64 {
	if n == nil {
		return nil
	}
	v := float64(*n)
	return &v
}

// EditRequest is a partial candle edit; omitted fields keep their value.
type EditRequest struct {
	StartDate     *time.Time `json:"start_date,omitempty" example:"2025-03-01T18:00:00Z"`
	EndDate       *time.Time `json:"end_date,omitempty" example:"2025-03-02T04:00:00Z"`
	BurnRate      *number    `json:"burn_rate,omitempty" swaggertype:"number" example:"1"`
	InitialHeight *number    `json:"initial_height,omitempty" swaggertype:"number" example:"10"`
	CandleWidth   *number    `json:"candle_width,omitempty" swaggertype:"number" example:"4"`
	WaxDensity    *number    `json:"wax_density,omitempty" swaggertype:"number" example:"0.554"`
	WaxBurnRate   *number    `json:"wax_burn_rate,omitempty" swaggertype:"number" example:"0.25"`
	// Derived quantity. Allowed: burnRate, endDate, startDate
	CalcMode *string `json:"calc_mode,omitempty" binding:"omitempty,oneof=burnRate endDate startDate" example:"endDate"`
	// Allowed: simple, advanced
	BurnMode *string `json:"burn_mode,omitempty" binding:"omitempty,oneof=simple advanced" example:"simple"`

	FlameColor      *string         `json:"flame_color,omitempty" binding:"omitempty,hexcolor" example:"#ED5108"`
	WaxColor        *string         `json:"wax_color,omitempty" binding:"omitempty,hexcolor" example:"#F5F5DC"`
	RulerColor      *string         `json:"ruler_color,omitempty" binding:"omitempty,hexcolor" example:"#FFFFFF"`
	RulerLabelColor *string         `json:"ruler_label_color,omitempty" binding:"omitempty,hexcolor" example:"#FFFFFF"`
	CameraState     json.RawMessage `json:"camera_state,omitempty" swaggertype:"object"`
}

func (r EditRequest) toEdit() models.Edit {
	e := models.Edit{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		BurnRate:        r.BurnRate.float(),
		InitialHeight:   r.InitialHeight.float(),
		CandleWidth:     r.CandleWidth.float(),
		WaxDensity:      r.WaxDensity.float(),
		WaxBurnRate:     r.WaxBurnRate.float(),
		FlameColor:      r.FlameColor,
		WaxColor:        r.WaxColor,
		RulerColor:      r.RulerColor,
		RulerLabelColor: r.RulerLabelColor,
	}
	if r.CalcMode != nil {
		m := models.CalcMode(*r.CalcMode)
		e.CalcMode = &m
	}
	if r.BurnMode != nil {
		m := models.BurnMode(*r.BurnMode)
		e.BurnMode = &m
	}
	if len(r.CameraState) > 0 && string(r.CameraState) != "null" {
		e.CameraState = r.CameraState
	}
	return e
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Get candle snapshot
// @Description  Derived burn view: current height, window, elapsed time and display parameters.
// @Tags         candle
// @Produce      json
// @Success      200  {object}  models.Snapshot
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/candle/state [get]
// @Security     BearerAuth
func (h *Handler) getSnapshot(c *gin.Context) {
	snap, err := h.services.Monitoring.GetSnapshot(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "candle_get_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary      Edit candle
// @Description  Partial edit. Numeric fields accept numbers or numeric text; the quantity named by calc_mode is recomputed.
// @Tags         candle
// @Accept       json
// @Produce      json
// @Param        body  body      EditRequest  true  "Fields to change"
// @Success      200   {object}  map[string]interface{}  "status, snapshot"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/candle/edit [post]
// @Security     BearerAuth
func (h *Handler) editCandle(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxEditBytes)
	var req EditRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	st, err := h.services.Candle.Edit(c.Request.Context(), req.toEdit())
	if err != nil {
		if errors.Is(err, service.ErrInvalidEdit) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errEditCandle, "candle_edit_failed", err)
		return
	}
	respondWithSnapshot(c, statusEdited, st)
}

// @Summary      Reset candle
// @Description  Restores defaults anchored at the current time.
// @Tags         candle
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, snapshot"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/candle/reset [post]
// @Security     BearerAuth
func (h *Handler) resetCandle(c *gin.Context) {
	st, err := h.services.Candle.Reset(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errResetCandle, "candle_reset_failed", err)
		return
	}
	respondWithSnapshot(c, statusReset, st)
}

// @Summary      Export config
// @Description  Downloads the portable config file.
// @Tags         candle
// @Produce      json
// @Success      200  {file}    file
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/candle/config [get]
// @Security     BearerAuth
func (h *Handler) exportConfig(c *gin.Context) {
	raw, err := h.services.Candle.Export(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errExportConfig, "candle_export_failed", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+configio.Filename+`"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

// @Summary      Import config
// @Description  Replaces the configuration with a previously exported file. Playback is paused.
// @Tags         candle
// @Accept       json
// @Produce      json
// @Param        body  body      object  true  "Exported config file"
// @Success      200   {object}  map[string]interface{}  "status, snapshot"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/candle/config [post]
// @Security     BearerAuth
func (h *Handler) importConfig(c *gin.Context) {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxConfigBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	st, err := h.services.Candle.Import(c.Request.Context(), raw)
	if err != nil {
		if errors.Is(err, configio.ErrMalformed) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errImportConfig, "candle_import_failed", err)
		return
	}
	respondWithSnapshot(c, statusImported, st)
}
