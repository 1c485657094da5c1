package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"laundry-scout.backend/internal/domain/entities"
	domainerrors "laundry-scout.backend/internal/domain/errors"
	"laundry-scout.backend/internal/interfaces/http/response"
	"laundry-scout.backend/pkg/jwt"
)

type NotificationService interface {
	Feed(ctx context.Context, limit int) ([]entities.Notification, error)
}

type PushService interface {
	Send(ctx context.Context, input *entities.PushInput) (*entities.PushResult, error)
}

// NotificationHub is the realtime fan-out the stream endpoint attaches to.
type NotificationHub interface {
	Add(conn *websocket.Conn)
	Remove(conn *websocket.Conn)
}

// NotificationHandler serves the notification feed, the realtime
// stream and the push dispatch endpoint.
type NotificationHandler struct {
	notificationUsecase NotificationService
	pushUsecase         PushService
	hub                 NotificationHub
	jwtService          *jwt.JWTService
}

func NewNotificationHandler(
	notificationUsecase NotificationService,
	pushUsecase PushService,
	hub NotificationHub,
	jwtService *jwt.JWTService,
) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
		pushUsecase:         pushUsecase,
		hub:                 hub,
		jwtService:          jwtService,
	}
}

// defaultFeedLimit matches the dropdown slice on the dashboard
const defaultFeedLimit = 5

// Feed returns the merged recent-registration notifications. The
// dropdown asks for the default slice; `all=true` opens the whole
// session window.
// GET /api/v1/notifications?limit=5&all=false
func (h *NotificationHandler) Feed(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if c.Query("all") == "true" {
		limit = 0
	}

	notifications, err := h.notificationUsecase.Feed(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"notifications": notifications})
}

// Stream upgrades to a websocket and subscribes the client to
// registration and review events. Browsers cannot set headers on a
// websocket handshake, so auth rides in the token query parameter.
// GET /api/v1/notifications/stream?token=...
func (h *NotificationHandler) Stream(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, domainerrors.Unauthorized("Authentication failed"))
		return
	}
	if _, err := h.jwtService.ValidateToken(token); err != nil {
		response.Error(c, domainerrors.Unauthorized("Authentication failed"))
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.Add(conn)
	defer func() {
		h.hub.Remove(conn)
		_ = conn.Close()
	}()

	// Hold the connection open; the hub writes, the client never sends.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Push sends a push notification to one user's registered device
// POST /api/v1/notifications/push
func (h *NotificationHandler) Push(c *gin.Context) {
	var input entities.PushInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.pushUsecase.Send(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("User has no registered device token"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
