package room

// Delivery fan-out. Messages are marshaled once and enqueued onto each
// recipient's buffered send queue; the network write happens in that
// session's write pump. A full or abandoned queue is a per-recipient
// delivery failure: it never blocks or aborts delivery to the others,
// and the caller disconnects the stalled session afterwards.

// trySend enqueues without blocking. Returns false when the recipient
// cannot accept the message.
func trySend(s *Session, payload []byte) bool {
	if payload == nil {
		return true
	}
	select {
	case s.send <- payload:
		return true
	default:
		return false
	}
}

// broadcastLocked delivers payload to every member except the one
// named by except (empty string means everyone). Returns the ids whose
// delivery failed. Caller holds r.mu.
func (r *Room) broadcastLocked(payload []byte, except string) []string {
	var failed []string
	for _, id := range r.order {
		if id == except {
			continue
		}
		if !trySend(r.sessions[id], payload) {
			failed = append(failed, id)
		}
	}
	return failed
}
