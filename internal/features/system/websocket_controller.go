package system

import (
	"time"

	"go-estate-crm/internal/events"
	"go-estate-crm/internal/features/insight"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

const (
	subscriberBuffer = 16
	writeTimeout     = 5 * time.Second
)

// InsightFrame is pushed to websocket clients after every collection change.
type InsightFrame struct {
	Change   *events.Change `json:"change,omitempty"`
	Insights any            `json:"insights"`
}

type WebSocketController struct {
	Bus            *events.Bus
	InsightService insight.InsightService
	Logger         *zap.Logger
}

func NewWebSocketController(bus *events.Bus, insightService insight.InsightService, logger *zap.Logger) *WebSocketController {
	return &WebSocketController{
		Bus:            bus,
		InsightService: insightService,
		Logger:         logger,
	}
}

// HandleInsights sends the current area insights on connect and again after
// each change. The read loop only detects the client going away.
func (h *WebSocketController) HandleInsights(c *websocket.Conn) {
	changes, unsubscribe := h.Bus.Subscribe(subscriberBuffer)
	defer unsubscribe()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := h.send(c, InsightFrame{Insights: h.InsightService.AreaInsights()}); err != nil {
		h.Logger.Debug("websocket write failed", zap.Error(err))
		return
	}

	for {
		select {
		case <-closed:
			return
		case change, ok := <-changes:
			if !ok {
				return
			}
			frame := InsightFrame{Change: &change, Insights: h.InsightService.AreaInsights()}
			if err := h.send(c, frame); err != nil {
				h.Logger.Debug("websocket write failed", zap.Error(err))
				return
			}
		}
	}
}

func (h *WebSocketController) send(c *websocket.Conn, frame InsightFrame) error {
	if err := c.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return c.WriteJSON(frame)
}
