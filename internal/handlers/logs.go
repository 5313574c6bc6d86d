package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ember_sculpt/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"

	endOfDay = 24*time.Hour - time.Nanosecond
)

var queryTimeLayouts = []string{time.RFC3339Nano, layoutDateTime, layoutDate}

// @Summary      List burn events
// @Description  Filter the burn journal by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD') and type. A date-only 'to' covers the whole day.
// @Tags         logs
// @Produce      json
// @Param        from  query   string  false  "Start of range"  example(2025-08-01)
// @Param        to    query   string  false  "End of range, date-only means end of day"  example(2025-08-31)
// @Param        type  query   string  false  "Event type"  Enums(EDIT,MODE_CHANGE,BURN_MODE_CHANGE,IMPORT,IMPORT_FAILED,RESET,PLAY,PAUSE,BURNED_OUT)
// @Success      200   {object}  map[string]interface{}  "count, events"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/logs [get]
// @Security     BearerAuth
func (h *Handler) getLogs(c *gin.Context) {
	filter, err := parseLogFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	events, err := h.services.EventLog.List(c.Request.Context(), filter)
	switch {
	case errors.Is(err, service.ErrInvalidTimeRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": "'from' must be <= 'to'"})
		return
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load logs", "logs_list_failed", err,
			"from", filter.From, "to", filter.To, "type", filter.Type)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":  len(events),
		"events": events,
	})
}

// parseLogFilter reads from/to/type from the query string. Empty bounds stay zero.
func parseLogFilter(c *gin.Context) (service.LogFilter, error) {
	f := service.LogFilter{Type: strings.ToUpper(strings.TrimSpace(c.Query("type")))}

	if qs := c.Query("from"); qs != "" {
		t, err := parseQueryTime(qs)
		if err != nil {
			return f, fmt.Errorf("invalid 'from' time: %w", err)
		}
		f.From = t
	}
	if qs := c.Query("to"); qs != "" {
		t, err := parseQueryTime(qs)
		if err != nil {
			return f, fmt.Errorf("invalid 'to' time: %w", err)
		}
		if !strings.ContainsAny(qs, "T ") {
			t = t.Add(endOfDay)
		}
		f.To = t
	}
	return f, nil
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range queryTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%q: use RFC3339, 'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD'", s)
}
