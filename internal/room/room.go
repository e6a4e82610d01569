package room

import (
	"slices"
	"strings"
	"sync"

	"drawguess/logger"
)

// WordSource hands out the secret word for a round. Injected at
// startup; words may repeat across rounds.
type WordSource interface {
	Pick() string
}

// Room owns all game state for one isolated game instance. Every
// operation takes the room mutex for its whole read-decide-mutate
// span, so two messages for the same room never interleave. Outbound
// delivery only enqueues onto session buffers and cannot block inside
// the critical section.
type Room struct {
	ID string

	mu       sync.Mutex
	sessions map[string]*Session
	order    []string // join order, spliced on removal, never reordered
	drawerID string
	word     string

	words    WordSource
	registry *Registry
}

// Info is the shape served by the debug room listing. The secret word
// never appears here.
type Info struct {
	RoomID    string `json:"roomId"`
	Sessions  int    `json:"sessions"`
	HasDrawer bool   `json:"hasDrawer"`
}

func (r *Room) Info() Info {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Info{RoomID: r.ID, Sessions: len(r.sessions), HasDrawer: r.drawerID != ""}
}

// Join registers s under the wire-supplied session id and answers the
// role request. A drawer request while a drawer exists is rejected
// with an error reply and the session stays a guesser. Nothing is
// broadcast to other members.
func (r *Room) Join(s *Session, sessionID, name string, requested Role) {
	r.mu.Lock()

	// A connection that re-joins under a new id is treated as
	// leave-then-join so survivors keep their rotation positions.
	if s.ID != sessionID {
		if _, ok := r.sessions[s.ID]; ok {
			r.removeLocked(s.ID)
		}
		s.ID = sessionID
	}
	if _, ok := r.sessions[sessionID]; !ok {
		r.order = append(r.order, sessionID)
	}
	s.Name = name
	r.sessions[sessionID] = s

	wasDrawer := r.drawerID == sessionID

	var reply []byte
	switch {
	case requested == RoleDrawer && r.drawerID == "":
		r.drawerID = sessionID
		r.word = r.words.Pick()
		s.Role = RoleDrawer
		reply = marshal(roleMsg{Type: "role", IsDrawer: true, Word: r.word})
	case requested == RoleDrawer:
		s.Role = RoleGuesser
		reply = marshal(errorMsg{Type: "error", Message: "Drawer already assigned. Join as guesser."})
	default:
		s.Role = RoleGuesser
		reply = marshal(roleMsg{Type: "role", IsDrawer: false})
	}

	// Role and drawerID must never disagree: a former drawer that
	// re-joined as guesser ends the round.
	if wasDrawer && s.Role != RoleDrawer {
		r.drawerID = ""
		r.word = ""
	}

	var failed []string
	if !trySend(s, reply) {
		failed = append(failed, s.ID)
	}
	r.dropLocked(failed)
	r.mu.Unlock()
}

// Draw relays stroke coordinates to everyone except the sender. No
// role check: guesser strokes are forwarded too, matching the
// permissive wire behavior clients rely on.
func (r *Room) Draw(senderID string, x, y float64) {
	payload := marshal(drawMsg{Type: "draw", X: x, Y: y})

	r.mu.Lock()
	failed := r.broadcastLocked(payload, senderID)
	r.dropLocked(failed)
	r.mu.Unlock()
}

// Chat echoes the message to every member, sender included.
func (r *Room) Chat(message string) {
	payload := marshal(chatMsg{Type: "chat", Message: message})

	r.mu.Lock()
	failed := r.broadcastLocked(payload, "")
	r.dropLocked(failed)
	r.mu.Unlock()
}

// Guess evaluates a guess against the current word. Wrong guesses are
// silent. A match broadcasts the win, rotates the drawer one position
// in live join order and fans out the new roles; the fresh word goes
// to the new drawer only. Concurrent winners serialize on the room
// mutex, so the second guess is checked against the post-rotation word.
func (r *Room) Guess(guesserName, rawGuess string) {
	guess := strings.ToLower(strings.TrimSpace(rawGuess))

	r.mu.Lock()
	if r.word == "" || guess != r.word {
		r.mu.Unlock()
		return
	}
	logger.Info("room %s: %q guessed by %s", r.ID, r.word, guesserName)

	failed := r.broadcastLocked(marshal(winMsg{Type: "win", Name: guesserName}), "")
	if r.rotateLocked() {
		failed = append(failed, r.roleFanoutLocked()...)
	}
	r.dropLocked(failed)
	r.mu.Unlock()
}

// NewRound rotates the drawer without requiring a guess. Clients get a
// reset before the role updates and a second reset after them; the
// first lets them prepare, the second definitively clears the canvas.
// With no current drawer rotation is a no-op and nothing is sent.
func (r *Room) NewRound() {
	r.mu.Lock()
	if !r.rotateLocked() {
		r.mu.Unlock()
		return
	}
	reset := marshal(resetMsg{Type: "reset"})
	failed := r.broadcastLocked(reset, "")
	failed = append(failed, r.roleFanoutLocked()...)
	failed = append(failed, r.broadcastLocked(reset, "")...)
	r.dropLocked(failed)
	r.mu.Unlock()
}

// Disconnect removes the session. The departing drawer takes the round
// with it: drawer and word are cleared until a join or new_round
// assigns fresh ones. Unknown ids are a no-op. No broadcast.
func (r *Room) Disconnect(sessionID string) {
	r.mu.Lock()
	r.removeLocked(sessionID)
	empty := len(r.sessions) == 0
	r.mu.Unlock()

	if empty && r.registry != nil {
		r.registry.Remove(r.ID)
	}
}

// rotateLocked advances drawerID to the next member in join order,
// wrapping at the end, and draws a fresh word. Returns false without
// touching state when the current drawer is not a member (including
// the no-drawer case).
func (r *Room) rotateLocked() bool {
	idx := slices.Index(r.order, r.drawerID)
	if idx < 0 {
		return false
	}
	next := r.order[(idx+1)%len(r.order)]
	for _, s := range r.sessions {
		s.Role = RoleGuesser
	}
	r.sessions[next].Role = RoleDrawer
	r.drawerID = next
	r.word = r.words.Pick()
	return true
}

// roleFanoutLocked sends each member its own role message; the word is
// withheld from everyone but the drawer.
func (r *Room) roleFanoutLocked() []string {
	var failed []string
	for _, id := range r.order {
		msg := roleMsg{Type: "role", IsDrawer: id == r.drawerID}
		if msg.IsDrawer {
			msg.Word = r.word
		}
		if !trySend(r.sessions[id], marshal(msg)) {
			failed = append(failed, id)
		}
	}
	return failed
}

func (r *Room) removeLocked(sessionID string) {
	if _, ok := r.sessions[sessionID]; !ok {
		return
	}
	delete(r.sessions, sessionID)
	if idx := slices.Index(r.order, sessionID); idx >= 0 {
		r.order = slices.Delete(r.order, idx, idx+1)
	}
	if r.drawerID == sessionID {
		r.drawerID = ""
		r.word = ""
	}
}

// dropLocked cleans up sessions whose delivery failed, treating them
// as disconnected. Room reclamation is left to the read pump's own
// Disconnect; a room is only removed from the registry once its last
// reader goes away.
func (r *Room) dropLocked(failed []string) {
	for _, id := range failed {
		s, ok := r.sessions[id]
		if !ok {
			continue
		}
		logger.Error("room %s: dropping session %s, send queue stalled", r.ID, id)
		r.removeLocked(id)
		s.cleanup()
	}
}
