package streamws

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	websocket "github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog/log"
	"github.com/saeid-a/CoachAIBack/internal/models"
	"github.com/saeid-a/CoachAIBack/internal/services"
)

const (
	FrameChunk = "chunk"
	FrameDone  = "done"
	FrameError = "error"
)

var errSessionClosed = errors.New("stream session closed")

type optimizer interface {
	StreamOptimization(ctx context.Context, profile models.Profile, onChunk func(string) error) (string, error)
}

// Frame is one server-to-client text message.
type Frame struct {
	Type    string `json:"type"`
	UserID  string `json:"userId,omitempty"`
	Content string `json:"content,omitempty"`
	Result  string `json:"result,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Session serves optimization requests over one connection. Each text frame
// received is a profile; the reply is a run of chunk frames closed by a done
// or error frame.
type Session struct {
	conn   *websocket.Conn
	send   chan []byte
	closed chan struct{}
}

func NewSession(conn *websocket.Conn) *Session {
	return &Session{
		conn:   conn,
		send:   make(chan []byte, 32),
		closed: make(chan struct{}),
	}
}

// Serve runs the write pump and blocks in the read loop until the peer goes away.
func (s *Session) Serve(ctx context.Context, service optimizer) {
	go s.WritePump()
	s.ReadPump(ctx, service)
}

// ReadPump reads requests on its own goroutine so a peer that goes away
// cancels the generation in flight.
func (s *Session) ReadPump(ctx context.Context, service optimizer) {
	ctx, cancel := context.WithCancel(ctx)
	requests := make(chan []byte)
	readerDone := make(chan struct{})

	defer func() {
		cancel()
		close(s.send)
		<-s.closed
		<-readerDone
	}()

	go func() {
		defer close(readerDone)
		defer close(requests)
		defer cancel()

		for {
			_, payload, err := s.conn.ReadMessage()
			if err != nil {
				return
			}
			select {
			case requests <- payload:
			case <-ctx.Done():
				return
			}
		}
	}()

	for payload := range requests {
		if err := s.handle(ctx, service, payload); errors.Is(err, errSessionClosed) {
			return
		}
	}
}

func (s *Session) handle(ctx context.Context, service optimizer, payload []byte) error {
	var profile models.Profile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return s.writeFrame(Frame{Type: FrameError, Detail: "invalid profile payload"})
	}
	if strings.TrimSpace(profile.UserID) == "" {
		return s.writeFrame(Frame{Type: FrameError, Detail: "userId is required"})
	}

	result, err := service.StreamOptimization(ctx, profile, func(fragment string) error {
		return s.writeFrame(Frame{Type: FrameChunk, UserID: profile.UserID, Content: fragment})
	})
	switch {
	case errors.Is(err, errSessionClosed), err != nil && ctx.Err() != nil:
		return errSessionClosed
	case errors.Is(err, services.ErrEmptyGeneration):
		return s.writeFrame(Frame{Type: FrameError, UserID: profile.UserID, Detail: "Failed to generate optimization"})
	case err != nil:
		log.Error().Err(err).Str("user_id", profile.UserID).Msg("stream optimization failed")
		return s.writeFrame(Frame{Type: FrameError, UserID: profile.UserID, Detail: "Internal Server Error"})
	}
	return s.writeFrame(Frame{Type: FrameDone, UserID: profile.UserID, Result: result})
}

func (s *Session) WritePump() {
	defer func() {
		_ = s.conn.Close()
		close(s.closed)
	}()

	for payload := range s.send {
		if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

func (s *Session) writeFrame(frame Frame) error {
	payload, err := json.Marshal(frame)
	if err != nil {
		return err
	}

	select {
	case s.send <- payload:
		return nil
	case <-s.closed:
		return errSessionClosed
	}
}
