package server

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

type rpcCall struct {
	ID     int             `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

type rpcResult struct {
	ID     int    `json:"id"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

type session struct {
	conn   *websocket.Conn
	logger zerolog.Logger
	mu     sync.Mutex // serializes writes
}

func (s *session) handleMessages() {
	defer s.conn.Close()
	for {
		_, message, err := s.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug().Err(err).Msg("Read failed")
			}
			return
		}

		var call rpcCall
		if err := json.Unmarshal(message, &call); err != nil {
			s.logger.Warn().Err(err).Msg("Unmarshal error")
			s.reply(rpcResult{Error: "invalid call: " + err.Error()})
			continue
		}

		result, err := dispatch(call.Method, call.Params)
		reply := rpcResult{ID: call.ID, Result: result}
		if err != nil {
			s.logger.Debug().Err(err).Str("method", call.Method).Int("id", call.ID).Msg("Call failed")
			reply.Error = err.Error()
		}
		if err := s.reply(reply); err != nil {
			s.logger.Debug().Err(err).Msg("Write failed")
			return
		}
	}
}

func (s *session) reply(result rpcResult) error {
	message, err := json.Marshal(result)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteMessage(websocket.TextMessage, message)
}

func (s *session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server closing"))
	s.conn.Close()
}
