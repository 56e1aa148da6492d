package server

import (
	"bytes"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/kapu/pedigree-chart-go/internal/adapter"
	"github.com/kapu/pedigree-chart-go/internal/canvas"
	"github.com/kapu/pedigree-chart-go/internal/constants"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  constants.WebSocketConfig.ReadBufferSize,
	WriteBufferSize: constants.WebSocketConfig.WriteBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsWriter serializes outbound writes. Overlay timers fire off the read
// loop and gorilla connections allow only one concurrent writer.
type wsWriter struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *wsWriter) WriteJSON(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.conn.SetWriteDeadline(time.Now().Add(constants.WebSocketConfig.WriteTimeout))
	return w.conn.WriteJSON(v)
}

// wsOverlay pushes hint-overlay changes to the connected client.
type wsOverlay struct {
	writer *wsWriter
}

func (o *wsOverlay) Show(text string) {
	_ = o.writer.WriteJSON(adapter.NewOverlayShowMessage(text))
}

func (o *wsOverlay) Hide() {
	_ = o.writer.WriteJSON(adapter.NewOverlayHideMessage())
}

// EventChannel runs one interactive chart session per WebSocket client:
// the client streams pointer/gesture events, the server answers with
// overlay and transform updates.
type EventChannel struct {
	handler *Handler
	events  *adapter.EventAdapter
	logger  *zap.Logger
}

func NewEventChannel(handler *Handler, events *adapter.EventAdapter, logger *zap.Logger) *EventChannel {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventChannel{handler: handler, events: events, logger: logger}
}

func (ec *EventChannel) Handle(c *gin.Context) {
	params, err := ec.handler.chartParamsFrom(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	session := uuid.NewString()
	writer := &wsWriter{conn: conn}

	ctrl, err := ec.handler.buildCanvas(c.Request.Context(), params, &wsOverlay{writer: writer})
	if err != nil || ctrl == nil {
		_ = writer.WriteJSON(gin.H{"type": "error", "error": "chart unavailable"})
		ec.logger.Warn("Chart session rejected",
			zap.String("session", session),
			zap.String("identifier", params.Identifier),
			zap.Error(err),
		)
		return
	}

	ec.logger.Info("Chart session connected",
		zap.String("session", session),
		zap.String("identifier", params.Identifier),
	)

	if data, err := exportSVG(ctrl); err == nil {
		_ = writer.WriteJSON(gin.H{
			"type":    "chart",
			"session": session,
			"format":  canvas.FormatSVG,
			"data":    string(data),
		})
	}

	// The read loop is the sole dispatcher; the controller is
	// single-goroutine by contract.
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			break
		}

		ev, err := ec.events.ParseEvent(raw)
		if err != nil {
			ec.logger.Warn("Dropping malformed event",
				zap.String("session", session),
				zap.Error(err),
			)
			_ = writer.WriteJSON(gin.H{"type": "error", "error": "unparseable event"})
			continue
		}

		ctrl.Dispatch(ev)
		_ = writer.WriteJSON(adapter.NewTransformMessage(ctrl.Zoom()))
	}

	ec.logger.Info("Chart session disconnected", zap.String("session", session))
}

func exportSVG(ctrl *canvas.Controller) ([]byte, error) {
	exporter, err := ctrl.Export(canvas.FormatSVG)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := exporter.Export(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
