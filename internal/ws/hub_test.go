package ws

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	messages [][]byte
	writeErr error
	closed   bool
}

func (f *fakeConn) WriteMessage(_ int, data []byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.messages = append(f.messages, data)
	return nil
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

func newTestHub() *Hub {
	log, _ := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return NewHub(log)
}

func TestBroadcastReachesTopicSubscribersOnly(t *testing.T) {
	hub := newTestHub()
	quizzes := &fakeConn{}
	questions := &fakeConn{}
	hub.AddConnection(TopicQuizzes, quizzes)
	hub.AddConnection(TopicQuestions, questions)

	hub.Broadcast(TopicQuizzes, WSMessage{Type: "quiz.created", Data: map[string]int{"id": 4}})

	require.Len(t, quizzes.messages, 1)
	assert.Empty(t, questions.messages)

	var msg struct {
		Type string         `json:"type"`
		Data map[string]int `json:"data"`
	}
	require.NoError(t, json.Unmarshal(quizzes.messages[0], &msg))
	assert.Equal(t, "quiz.created", msg.Type)
	assert.Equal(t, 4, msg.Data["id"])
}

func TestBroadcastDropsFailingConnections(t *testing.T) {
	hub := newTestHub()
	broken := &fakeConn{writeErr: errors.New("gone")}
	healthy := &fakeConn{}
	hub.AddConnection(TopicQuizzes, broken)
	hub.AddConnection(TopicQuizzes, healthy)

	hub.Broadcast(TopicQuizzes, WSMessage{Type: "quizzes.cleared"})

	assert.True(t, broken.closed)
	assert.Equal(t, 1, hub.Connections(TopicQuizzes))
	assert.Len(t, healthy.messages, 1)
}

type reentrantConn struct {
	fakeConn
	onWrite func()
}

func (r *reentrantConn) WriteMessage(messageType int, data []byte) error {
	r.onWrite()
	return r.fakeConn.WriteMessage(messageType, data)
}

func TestBroadcastWritesWithoutHoldingHubLock(t *testing.T) {
	hub := newTestHub()
	late := &fakeConn{}
	var seen int
	conn := &reentrantConn{}
	conn.onWrite = func() {
		// Deadlocks if Broadcast still holds the hub mutex.
		seen = hub.Connections(TopicQuestions)
		hub.AddConnection(TopicQuestions, late)
	}
	hub.AddConnection(TopicQuestions, conn)

	done := make(chan struct{})
	go func() {
		hub.Broadcast(TopicQuestions, WSMessage{Type: "question.created"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked on the hub lock")
	}

	assert.Equal(t, 1, seen)
	assert.Len(t, conn.messages, 1)
	assert.Empty(t, late.messages, "subscribers added mid-broadcast wait for the next message")
	assert.Equal(t, 2, hub.Connections(TopicQuestions))
}

func TestRemoveConnection(t *testing.T) {
	hub := newTestHub()
	conn := &fakeConn{}
	hub.AddConnection(TopicQuestions, conn)

	hub.RemoveConnection(TopicQuestions, conn)
	assert.True(t, conn.closed)
	assert.Zero(t, hub.Connections(TopicQuestions))

	hub.RemoveConnection(TopicQuestions, conn)
	hub.Broadcast(TopicQuestions, WSMessage{Type: "question.deleted"})
	assert.Empty(t, conn.messages)
}

func TestValidTopic(t *testing.T) {
	assert.True(t, ValidTopic(TopicQuizzes))
	assert.True(t, ValidTopic(TopicQuestions))
	assert.False(t, ValidTopic("sessions"))
}
