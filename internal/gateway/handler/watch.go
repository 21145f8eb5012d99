package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"algolens/internal/gateway/service/workspace"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	watchWSWriteWait = 10 * time.Second
	watchWSPongWait  = 60 * time.Second
	watchWSPingEvery = (watchWSPongWait * 9) / 10
)

var watchWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// WatchHandler pushes visualization change events to connected clients.
// An optional projectId query parameter narrows the stream to one project.
type WatchHandler struct {
	hub    *workspace.Hub
	logger *zap.Logger
}

func NewWatchHandler(hub *workspace.Hub, logger *zap.Logger) *WatchHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WatchHandler{hub: hub, logger: logger}
}

type watchWSOutbound struct {
	Type            string `json:"type"`
	ProjectID       string `json:"projectId,omitempty"`
	VisualizationID string `json:"visualizationId,omitempty"`
}

func (h *WatchHandler) HandleWatchWS(w http.ResponseWriter, r *http.Request) {
	projectFilter := strings.TrimSpace(r.URL.Query().Get("projectId"))

	conn, err := watchWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(watchWSPongWait)); err != nil {
		h.logger.Warn("watch ws set read deadline failed", zap.Error(err))
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(watchWSPongWait))
	})

	events := h.hub.Subscribe()
	defer h.hub.Unsubscribe(events)

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(watchWSPingEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				if projectFilter != "" && ev.ProjectID != projectFilter {
					continue
				}
				if err := conn.SetWriteDeadline(time.Now().Add(watchWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteJSON(watchWSOutbound{
					Type:            ev.Type,
					ProjectID:       ev.ProjectID,
					VisualizationID: ev.VisualizationID,
				}); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(watchWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	// Reads only keep the pong handler alive; inbound payloads are ignored.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			cancel()
			<-writerDone
			return
		}
	}
}
