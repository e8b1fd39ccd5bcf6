package admin

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/quizdesk/quizdesk/internal/dto"
	"github.com/quizdesk/quizdesk/internal/notifier"
	"github.com/rs/zerolog/log"
)

const (
	keepAliveInterval = 25 * time.Second
	wsWriteTimeout    = 10 * time.Second
)

// AdminEventsController pushes new-result and result-reviewed events to
// dashboards over SSE or a websocket.
type AdminEventsController struct {
	broker    *notifier.Broker
	keepAlive time.Duration
	upgrader  websocket.Upgrader
}

func NewAdminEventsController(broker *notifier.Broker) *AdminEventsController {
	return &AdminEventsController{
		broker:    broker,
		keepAlive: keepAliveInterval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (c *AdminEventsController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/events", c.Stream)
	rg.GET("/ws", c.Socket)
}

// Stream godoc
// @Summary (Admin) Live events over SSE
// @Description Emits "new-result" and "result-reviewed" events until the client disconnects.
// @Tags Admin - Dashboard
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /admin/events [get]
func (c *AdminEventsController) Stream(ctx *gin.Context) {
	events, cancel := c.broker.Subscribe()
	defer cancel()

	ticker := time.NewTicker(c.keepAlive)
	defer ticker.Stop()

	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("X-Accel-Buffering", "no")
	ctx.Header("Content-Type", "text/event-stream")
	ctx.Status(http.StatusOK)
	// Send headers now so clients see the stream open before the first event.
	ctx.Writer.Flush()
	log.Debug().Str("client_ip", ctx.ClientIP()).Msg("Admin Stream: subscriber attached")

	ctx.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			ctx.SSEvent(ev.Name, ev.Payload)
			return true
		case <-ticker.C:
			ctx.SSEvent("ping", time.Now().UTC().Unix())
			return true
		case <-ctx.Request.Context().Done():
			return false
		}
	})
	log.Debug().Str("client_ip", ctx.ClientIP()).Msg("Admin Stream: subscriber detached")
}

// Socket godoc
// @Summary (Admin) Live events over a websocket
// @Description Every event is sent as a JSON text message {"event": name, "payload": ...}.
// @Tags Admin - Dashboard
// @Success 101 {string} string "switching protocols"
// @Failure 400 {object} dto.ErrorResponse "Not a websocket handshake"
// @Router /admin/ws [get]
func (c *AdminEventsController) Socket(ctx *gin.Context) {
	if !websocket.IsWebSocketUpgrade(ctx.Request) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "websocket upgrade required"})
		return
	}
	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		// Upgrade has already answered the client.
		log.Warn().Err(err).Msg("Admin Socket: upgrade failed")
		return
	}
	defer conn.Close()

	events, cancel := c.broker.Subscribe()
	defer cancel()

	// The dashboard never sends anything; reading only detects the close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(c.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
					time.Now().Add(wsWriteTimeout))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteJSON(ev); err != nil {
				log.Debug().Err(err).Msg("Admin Socket: write failed")
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteTimeout)); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}
