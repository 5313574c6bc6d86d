package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 1 << 12

	defaultInterval = time.Second
	minInterval     = 20 * time.Millisecond
	maxInterval     = 10 * time.Second

	wsTypeSnapshot = "snapshot"
	wsTypeError    = "error"
)

// wsEnvelope frames every message on the stream.
type wsEnvelope struct {
	Type  string `json:"type"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// snapshotStream pushes snapshots to one websocket peer.
type snapshotStream struct {
	h        *Handler
	conn     *websocket.Conn
	interval time.Duration
}

// @Summary      Snapshot stream
// @Description  WebSocket. Sends {"type":"snapshot","data":Snapshot} immediately and then every interval.
// @Tags         candle
// @Param        interval     query  string  false  "Go duration, e.g. 200ms (20ms..10s)"
// @Param        interval_ms  query  int     false  "Interval in milliseconds (20..10000)"
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	interval := streamInterval(c.Query("interval"), c.Query("interval_ms"))

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Errorw("ws_upgrade_failed", "err", err)
		return
	}
	defer func() { _ = conn.Close() }()

	s := &snapshotStream{h: h, conn: conn, interval: interval}
	s.run(c.Request.Context())
}

func (s *snapshotStream) run(ctx context.Context) {
	s.conn.SetReadLimit(maxMsgSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	peerGone := make(chan struct{})
	go s.drain(peerGone)

	if err := s.push(ctx); err != nil {
		s.h.log.Infow("ws_write_failed_initial", "err", err)
		return
	}

	frames := time.NewTicker(s.interval)
	defer frames.Stop()
	keepalive := time.NewTicker(pingPeriod)
	defer keepalive.Stop()

	for {
		select {
		case <-peerGone:
			return
		case <-ctx.Done():
			return
		case <-keepalive.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				s.h.log.Infow("ws_ping_failed", "err", err)
				return
			}
		case <-frames.C:
			if err := s.push(ctx); err != nil {
				s.h.log.Infow("ws_write_failed", "err", err)
				return
			}
		}
	}
}

// drain reads until the peer disconnects so pong frames are processed.
func (s *snapshotStream) drain(peerGone chan<- struct{}) {
	defer close(peerGone)
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			s.h.log.Debugw("ws_read_closed", "err", err)
			return
		}
	}
}

// push writes the current snapshot, or an error frame when it cannot be built.
func (s *snapshotStream) push(ctx context.Context) error {
	snap, err := s.h.services.Monitoring.GetSnapshot(ctx)
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err != nil {
		s.h.log.Errorw("ws_get_snapshot_failed", "err", err)
		_ = s.conn.WriteJSON(wsEnvelope{Type: wsTypeError, Error: errGetState})
		return err
	}
	return s.conn.WriteJSON(wsEnvelope{Type: wsTypeSnapshot, Data: snap})
}

// streamInterval picks the push interval from ?interval (a Go duration) or
// ?interval_ms. The first in-range value wins, otherwise the default applies.
func streamInterval(interval, intervalMs string) time.Duration {
	inRange := func(d time.Duration) bool { return d >= minInterval && d <= maxInterval }

	if d, err := time.ParseDuration(interval); err == nil && inRange(d) {
		return d
	}
	if ms, err := strconv.Atoi(intervalMs); err == nil {
		if d := time.Duration(ms) * time.Millisecond; inRange(d) {
			return d
		}
	}
	return defaultInterval
}
