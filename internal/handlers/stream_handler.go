package handlers

import (
	"context"

	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/saeid-a/CoachAIBack/internal/models"
	streamws "github.com/saeid-a/CoachAIBack/internal/websocket"
)

type streamService interface {
	StreamOptimization(ctx context.Context, profile models.Profile, onChunk func(string) error) (string, error)
}

type StreamHandler struct {
	service streamService
}

func NewStreamHandler(service streamService) *StreamHandler {
	return &StreamHandler{service: service}
}

func (h *StreamHandler) RequireUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return detail(c, fiber.StatusUpgradeRequired, "WebSocket upgrade required")
	}
	return c.Next()
}

func (h *StreamHandler) HandleWebSocket(conn *websocket.Conn) {
	streamws.NewSession(conn).Serve(context.Background(), h.service)
}
