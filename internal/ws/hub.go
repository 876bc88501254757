package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	TopicQuestions = "questions"
	TopicQuizzes   = "quizzes"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Conn is the part of *websocket.Conn the hub writes to.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// subscriber serializes writes to one connection; gorilla allows a single
// concurrent writer.
type subscriber struct {
	mu sync.Mutex
}

type Hub struct {
	mu     sync.Mutex
	topics map[string]map[Conn]*subscriber
	log    logrus.FieldLogger
}

func NewHub(log logrus.FieldLogger) *Hub {
	return &Hub{
		topics: make(map[string]map[Conn]*subscriber),
		log:    log,
	}
}

func ValidTopic(topic string) bool {
	return topic == TopicQuestions || topic == TopicQuizzes
}

func (h *Hub) AddConnection(topic string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.topics[topic] == nil {
		h.topics[topic] = make(map[Conn]*subscriber)
	}
	h.topics[topic][conn] = &subscriber{}
	h.log.WithFields(logrus.Fields{"topic": topic, "total": len(h.topics[topic])}).Debug("ws: client connected")
}

func (h *Hub) RemoveConnection(topic string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.topics[topic]; ok {
		if _, ok := conns[conn]; !ok {
			return
		}
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.topics, topic)
		}
		h.log.WithField("topic", topic).Debug("ws: client disconnected")
	}
}

func (h *Hub) Connections(topic string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.topics[topic])
}

// Broadcast sends message to every subscriber of topic, dropping
// connections that fail to accept it. Writes happen outside the hub lock.
func (h *Hub) Broadcast(topic string, message WSMessage) {
	data, err := json.Marshal(message)
	if err != nil {
		h.log.WithError(err).Error("ws: marshal error")
		return
	}

	h.mu.Lock()
	targets := make(map[Conn]*subscriber, len(h.topics[topic]))
	for conn, sub := range h.topics[topic] {
		targets[conn] = sub
	}
	h.mu.Unlock()

	for conn, sub := range targets {
		sub.mu.Lock()
		err := conn.WriteMessage(websocket.TextMessage, data)
		sub.mu.Unlock()
		if err != nil {
			h.log.WithError(err).WithField("topic", topic).Warn("ws: write error")
			h.RemoveConnection(topic, conn)
		}
	}
}
