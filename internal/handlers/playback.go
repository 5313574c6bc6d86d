package handlers

import (
	"context"
	"math"
	"net/http"
	"time"

	"ember_sculpt/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	statusPlaying = "playing"
	statusPaused  = "paused"
	statusSeeked  = "seeked"

	errPlayback = "failed to update playback"
)

// SeekRequest moves the playhead relative to the start of the window.
type SeekRequest struct {
	// Offset from start_date in milliseconds; clamped to the window.
	OffsetMs *int64 `json:"offset_ms" binding:"required" example:"5400000"`
}

func playStatus(st models.BurnState) string {
	if st.IsPlaying {
		return statusPlaying
	}
	return statusPaused
}

func (h *Handler) playbackAction(c *gin.Context, logKey string, fn func(context.Context) (models.BurnState, error)) {
	st, err := fn(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errPlayback, logKey, err)
		return
	}
	respondWithSnapshot(c, playStatus(st), st)
}

// @Summary      Start playback
// @Description  Stays paused when the playhead is already at the end of the window.
// @Tags         playback
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, snapshot"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/playback/play [post]
// @Security     BearerAuth
func (h *Handler) play(c *gin.Context) {
	h.playbackAction(c, "playback_play_failed", h.services.Playback.Play)
}

// @Summary      Pause playback
// @Tags         playback
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, snapshot"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/playback/pause [post]
// @Security     BearerAuth
func (h *Handler) pause(c *gin.Context) {
	h.playbackAction(c, "playback_pause_failed", h.services.Playback.Pause)
}

// @Summary      Toggle playback
// @Tags         playback
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, snapshot"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/playback/toggle [post]
// @Security     BearerAuth
func (h *Handler) toggle(c *gin.Context) {
	h.playbackAction(c, "playback_toggle_failed", h.services.Playback.Toggle)
}

// @Summary      Seek
// @Tags         playback
// @Accept       json
// @Produce      json
// @Param        body  body      SeekRequest  true  "Offset"
// @Success      200   {object}  map[string]interface{}  "status, snapshot"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/playback/seek [post]
// @Security     BearerAuth
func (h *Handler) seek(c *gin.Context) {
	var req SeekRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	offset := offsetDuration(*req.OffsetMs)
	st, err := h.services.Playback.Seek(c.Request.Context(), offset)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errPlayback, "playback_seek_failed", err, "offset_ms", *req.OffsetMs)
		return
	}
	respondWithSnapshot(c, statusSeeked, st)
}

// maxOffsetMs is the largest millisecond count a time.Duration can hold.
const maxOffsetMs = math.MaxInt64 / int64(time.Millisecond)

// offsetDuration converts ms to a Duration, saturating instead of wrapping.
func offsetDuration(ms int64) time.Duration {
	switch {
	case ms > maxOffsetMs:
		ms = maxOffsetMs
	case ms < -maxOffsetMs:
		ms = -maxOffsetMs
	}
	return time.Duration(ms) * time.Millisecond
}
