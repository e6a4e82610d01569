package room

import (
	"encoding/json"

	"drawguess/logger"
)

// Handle dispatches one raw inbound message to the room operation it
// names. Malformed input gets a local error reply and mutates nothing;
// the read loop always survives.
func (r *Room) Handle(s *Session, raw []byte) {
	var in Inbound
	if err := json.Unmarshal(raw, &in); err != nil {
		logger.Info("room %s: session %s sent invalid JSON: %v", r.ID, s.ID, err)
		r.replyError(s, "invalid message")
		return
	}

	switch in.Type {
	case "join":
		if in.SessionID == nil || in.Name == nil || in.Role == nil {
			r.replyError(s, "join requires session_id, name and role")
			return
		}
		requested := RoleGuesser
		if *in.Role == string(RoleDrawer) {
			requested = RoleDrawer
		}
		r.Join(s, *in.SessionID, *in.Name, requested)

	case "draw":
		if in.X == nil || in.Y == nil {
			r.replyError(s, "draw requires x and y")
			return
		}
		r.Draw(s.ID, *in.X, *in.Y)

	case "chat":
		if in.Message == nil {
			r.replyError(s, "chat requires message")
			return
		}
		r.Chat(*in.Message)

	case "guess":
		if in.Name == nil || in.Guess == nil {
			r.replyError(s, "guess requires name and guess")
			return
		}
		r.Guess(*in.Name, *in.Guess)

	case "new_round":
		r.NewRound()

	default:
		r.replyError(s, "unknown message type: "+in.Type)
	}
}

// replyError answers the sender only. The session may not be a member
// yet (errors before join are legal), so failure here only tears the
// session itself down.
func (r *Room) replyError(s *Session, msg string) {
	if trySend(s, marshal(errorMsg{Type: "error", Message: msg})) {
		return
	}
	s.cleanup()
	r.Disconnect(s.ID)
}
