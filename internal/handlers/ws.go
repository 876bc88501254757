package handlers

import (
	"net/http"
	"time"

	"quiz-bank-backend/internal/middleware"
	"quiz-bank-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

const writeWait = 5 * time.Second

// deadlineConn bounds how long a broadcast may wait on one slow client.
type deadlineConn struct {
	*websocket.Conn
}

func (d deadlineConn) WriteMessage(messageType int, data []byte) error {
	_ = d.SetWriteDeadline(time.Now().Add(writeWait))
	return d.Conn.WriteMessage(messageType, data)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket godoc
// @Summary      WebSocket feed of question bank and quiz events
// @Description  Topics: questions, quizzes
// @Tags         websocket
// @Param        topic path string true "Topic"
// @Router       /ws/admin/{topic} [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	topic := c.Param("topic")
	if !ws.ValidTopic(topic) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown topic"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		middleware.Logger(c).WithError(err).Warn("websocket upgrade error")
		return
	}

	sub := deadlineConn{Conn: conn}
	h.hub.AddConnection(topic, sub)
	defer h.hub.RemoveConnection(topic, sub)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
