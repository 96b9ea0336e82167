package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"airnet/model"
)

type Server struct {
	addr      string
	upgrader  websocket.Upgrader
	evaluator Evaluator
}

func NewServer(addr string, upgrader websocket.Upgrader, evaluator Evaluator) *Server {
	return &Server{
		addr:      addr,
		upgrader:  upgrader,
		evaluator: evaluator,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("upgrade failed")
		return
	}
	defer conn.Close()

	hub := NewHub()
	hub.conn = conn
	hub.evaluator = s.evaluator
	defer close(hub.done)

	go hub.handleRequest()
	go hub.handleResponse()

	var msg model.Msg
	for {
		if err := conn.ReadJSON(&msg); err != nil {
			log.WithError(err).Info("connection closed")
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Serve() error {
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		s.serveWs(w, r)
	})
	log.WithField("addr", s.addr).Info("listening")
	return http.ListenAndServe(s.addr, nil)
}
