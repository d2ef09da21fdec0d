package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Path is where editor clients open their WebSocket.
const Path = "/style"

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Server lets editor UIs style text over a WebSocket. Every message is a call
// that gets exactly one reply with the same id.
type Server struct {
	server   *http.Server
	logger   zerolog.Logger
	mu       sync.Mutex
	listener net.Listener
	sessions []*session
}

func New(addr string, logger zerolog.Logger) *Server {
	s := &Server{
		logger:   logger,
		sessions: []*session{},
	}
	s.server = &http.Server{Addr: addr, Handler: s.Handler()}
	return s
}

// Handler returns the HTTP handler serving the WebSocket endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(Path, func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			s.logger.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("WebSocket upgrade failed")
			return
		}

		newSession := &session{
			conn:   conn,
			logger: s.logger.With().Str("remote", r.RemoteAddr).Logger(),
		}

		s.mu.Lock()
		s.sessions = append(s.sessions, newSession)
		s.mu.Unlock()
		newSession.logger.Info().Msg("Editor connected")

		go func() {
			newSession.handleMessages()
			s.mu.Lock()
			for i, sess := range s.sessions {
				if sess == newSession {
					s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
					break
				}
			}
			s.mu.Unlock()
			newSession.logger.Info().Msg("Editor disconnected")
		}()
	})
	return mux
}

// Start listens on the configured address and serves in the background until
// ctx is done or Close is called.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.server.Addr, err)
	}
	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()
	s.logger.Info().Str("addr", listener.Addr().String()).Str("path", Path).Msg("Listening")

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("Serve failed")
		}
	}()
	go func() {
		<-ctx.Done()
		s.Close()
	}()
	return nil
}

// Addr returns the address the server is listening on, or the configured one
// before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.server.Addr
}

// Sessions returns the number of connected editors.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Server) Close() error {
	s.mu.Lock()
	sessions := append([]*session(nil), s.sessions...)
	s.mu.Unlock()
	for _, sess := range sessions {
		sess.close()
	}
	return s.server.Close()
}
