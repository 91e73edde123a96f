package notification

import (
	"net/http"
	"time"

	"kitchencare/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// TODO: restrict origins once the app domains are final.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSHandler upgrades /ws/notifications connections. The stream is push-only;
// the read loop exists to detect disconnects and answer pings.
type WSHandler struct {
	hub *Hub
	jwt *jwt.Service
	log *zap.Logger
}

func NewWSHandler(hub *Hub, jwtService *jwt.Service, log *zap.Logger) *WSHandler {
	return &WSHandler{hub: hub, jwt: jwtService, log: log}
}

// HandleWebSocket authenticates via ?token= because browsers cannot set
// headers on websocket upgrades.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required. Use ?token=YOUR_JWT_TOKEN"})
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}
	userID := claims.UserID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.hub.Register(userID, conn)
	h.log.Info("websocket connected", zap.Int64("user_id", userID))

	defer func() {
		h.hub.Unregister(userID, conn)
		h.log.Info("websocket disconnected", zap.Int64("user_id", userID))
	}()

	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	h.readLoop(conn, userID)
}

func (h *WSHandler) readLoop(conn *websocket.Conn, userID int64) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure) {
				h.log.Warn("websocket read error", zap.Int64("user_id", userID), zap.Error(err))
			}
			return
		}
	}
}
