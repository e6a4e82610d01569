package room

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"golang.org/x/time/rate"

	"drawguess/logger"
)

// Session is one connected participant inside a room. The websocket
// connection is owned by the transport layer; the room only ever talks
// to the send queue. A nil conn is legal (tests construct sessions
// without a socket and read the queue directly).
type Session struct {
	ID   string
	Name string
	Role Role

	conn    *websocket.Conn
	send    chan []byte
	limiter *rate.Limiter
	ctx     context.Context
	cancel  context.CancelFunc
	once    sync.Once
}

func NewSession(id string, c *websocket.Conn, sendBuf int, msgRate rate.Limit, burst int) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		ID:      id,
		Role:    RoleGuesser,
		conn:    c,
		send:    make(chan []byte, sendBuf),
		limiter: rate.NewLimiter(msgRate, burst),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// cleanup is safe to call more than once. The send queue is never
// closed; WritePump exits via ctx so a late broadcast can only fill
// the buffer, not panic.
func (s *Session) cleanup() {
	s.once.Do(func() {
		s.cancel()
		if s.conn != nil {
			s.conn.Close()
		}
	})
}

func (s *Session) ReadPump(r *Room) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("session %s readPump panic: %v", s.ID, rec)
		}
		s.cleanup()
		r.Disconnect(s.ID)
	}()

	for {
		select {
		case <-s.ctx.Done():
			return
		default:
			_, msg, err := s.conn.ReadMessage()
			if err != nil {
				logger.Info("session %s read: %v", s.ID, err)
				return
			}
			if !s.limiter.Allow() {
				continue
			}
			r.Handle(s, msg)
		}
	}
}

func (s *Session) WritePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		s.cleanup()
	}()

	for {
		select {
		case <-s.ctx.Done():
			return

		case msg := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				logger.Error("session %s write: %v", s.ID, err)
				return
			}

		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Error("session %s ping: %v", s.ID, err)
				return
			}
		}
	}
}
