package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleMalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"invalid json", `{"type":"join",`},
		{"join missing role", `{"type":"join","session_id":"a","name":"alice"}`},
		{"join missing session id", `{"type":"join","name":"alice","role":"guesser"}`},
		{"draw missing coords", `{"type":"draw","x":4}`},
		{"chat missing message", `{"type":"chat"}`},
		{"guess missing guess", `{"type":"guess","name":"alice"}`},
		{"unknown type", `{"type":"teleport"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRoom("apple")
			s := newTestSession("conn-1")

			r.Handle(s, []byte(tt.raw))

			msg := nextMsg(t, s)
			assert.Equal(t, "error", msg["type"])
			assert.NotEmpty(t, msg["message"])
			// no mutation: the sender was never registered
			assert.Equal(t, 0, r.Info().Sessions)
		})
	}
}

func TestHandleErrorIsTargetedOnly(t *testing.T) {
	r := newTestRoom("apple")
	a := join(r, "a", "alice", RoleGuesser)
	drain(t, a)
	s := newTestSession("conn-1")

	r.Handle(s, []byte(`{"type":"chat"}`))

	assert.Empty(t, drain(t, a))
}

func TestHandleDispatchesJoin(t *testing.T) {
	r := newTestRoom("apple")
	s := newTestSession("conn-1")

	r.Handle(s, []byte(`{"type":"join","session_id":"a","name":"alice","role":"drawer"}`))

	msg := nextMsg(t, s)
	require.Equal(t, "role", msg["type"])
	assert.Equal(t, true, msg["is_drawer"])
	assert.Equal(t, "apple", msg["word"])
	assert.Equal(t, "a", s.ID)
	assert.Equal(t, 1, r.Info().Sessions)
}

func TestHandleUnrecognizedRoleJoinsAsGuesser(t *testing.T) {
	r := newTestRoom("apple")
	s := newTestSession("conn-1")

	r.Handle(s, []byte(`{"type":"join","session_id":"a","name":"alice","role":"spectator"}`))

	msg := nextMsg(t, s)
	assert.Equal(t, "role", msg["type"])
	assert.Equal(t, false, msg["is_drawer"])
}

func TestHandleDispatchesDrawWithSenderExcluded(t *testing.T) {
	r := newTestRoom("apple")
	a := newTestSession("conn-a")
	b := newTestSession("conn-b")
	r.Handle(a, []byte(`{"type":"join","session_id":"a","name":"alice","role":"drawer"}`))
	r.Handle(b, []byte(`{"type":"join","session_id":"b","name":"bob","role":"guesser"}`))
	drain(t, a)
	drain(t, b)

	r.Handle(a, []byte(`{"type":"draw","x":7,"y":9}`))

	assert.Empty(t, drain(t, a))
	msg := nextMsg(t, b)
	assert.Equal(t, "draw", msg["type"])
	assert.Equal(t, 7.0, msg["x"])
	assert.Equal(t, 9.0, msg["y"])
}

func TestHandleDispatchesGuessAndNewRound(t *testing.T) {
	r := newTestRoom("apple", "zebra", "moon")
	a := newTestSession("conn-a")
	b := newTestSession("conn-b")
	r.Handle(a, []byte(`{"type":"join","session_id":"a","name":"alice","role":"drawer"}`))
	r.Handle(b, []byte(`{"type":"join","session_id":"b","name":"bob","role":"guesser"}`))
	drain(t, a)
	drain(t, b)

	r.Handle(b, []byte(`{"type":"guess","name":"bob","guess":"apple"}`))
	assert.Equal(t, "b", r.drawerID)
	drain(t, a)
	drain(t, b)

	r.Handle(a, []byte(`{"type":"new_round"}`))
	assert.Equal(t, "a", r.drawerID)
}

func TestHandlePreJoinDrawRelaysToMembers(t *testing.T) {
	r := newTestRoom("apple")
	a := join(r, "a", "alice", RoleGuesser)
	drain(t, a)

	// a socket that never joined still relays; its fallback id
	// matches no member, so everyone receives the stroke
	stranger := newTestSession("conn-x")
	r.Handle(stranger, []byte(`{"type":"draw","x":1,"y":2}`))

	msg := nextMsg(t, a)
	assert.Equal(t, "draw", msg["type"])
}
