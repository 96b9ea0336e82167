package server

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"airnet/model"
)

// Evaluator is the duct network calculation behind the hub.
type Evaluator interface {
	Evaluate() ([]model.RouteResult, error)
	Reset()
}

// Hub serialises the requests of one websocket client against the
// evaluator.
type Hub struct {
	evaluator Evaluator
	conn      *websocket.Conn
	// request
	msg chan model.Msg
	// response
	evaluated chan model.Msg
	resetDone chan model.Msg
	// closed when the connection goes away, stops both loops
	done chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		msg:       make(chan model.Msg, 10),
		evaluated: make(chan model.Msg, 10),
		resetDone: make(chan model.Msg, 10),
		done:      make(chan struct{}),
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			h.dispatch(msg)
		case <-h.done:
			return
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func (h *Hub) dispatch(msg model.Msg) {
	switch msg.Type {
	case "evaluate":
		h.evaluated <- model.Msg{Type: "evaluated"}
	case "reset":
		h.resetDone <- model.Msg{Type: "resetDone", Content: "network reset"}
	default:
		log.WithField("type", msg.Type).Warn("no such type")
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.evaluated:
			results, err := h.evaluator.Evaluate()
			if err != nil {
				log.WithError(err).Error("evaluation failed")
				reply.Type = "error"
				reply.Content = err.Error()
				h.write(reply)
				continue
			}
			data, err := json.Marshal(results)
			if err != nil {
				log.WithError(err).Error("marshal results")
				continue
			}
			reply.Content = string(data)
			h.write(reply)
		case reply := <-h.resetDone:
			h.evaluator.Reset()
			h.write(reply)
		case <-h.done:
			return
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func (h *Hub) write(reply model.Msg) {
	if err := h.conn.WriteJSON(&reply); err != nil {
		log.WithError(err).Error("write reply")
	}
}
