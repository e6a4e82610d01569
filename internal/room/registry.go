package room

import (
	"sync"

	"drawguess/logger"
)

// Registry is the process-wide room table. Rooms are created lazily on
// first reference and reclaimed once their last session leaves. The
// registry lock covers only the map; each room serializes its own
// operations.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Room
	words WordSource
}

func NewRegistry(words WordSource) *Registry {
	return &Registry{
		rooms: make(map[string]*Room),
		words: words,
	}
}

func (reg *Registry) GetOrCreate(id string) *Room {
	reg.mu.RLock()
	r, ok := reg.rooms[id]
	reg.mu.RUnlock()
	if ok {
		return r
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if r, ok := reg.rooms[id]; ok {
		return r
	}
	r = &Room{
		ID:       id,
		sessions: make(map[string]*Session),
		words:    reg.words,
		registry: reg,
	}
	reg.rooms[id] = r
	logger.Info("room %s created", id)
	return r
}

func (reg *Registry) Get(id string) (*Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	r, ok := reg.rooms[id]
	return r, ok
}

func (reg *Registry) Remove(id string) {
	reg.mu.Lock()
	delete(reg.rooms, id)
	reg.mu.Unlock()
	logger.Info("room %s reclaimed", id)
}

// Snapshot copies the room pointers first so no room lock is taken
// while the registry lock is held.
func (reg *Registry) Snapshot() []Info {
	reg.mu.RLock()
	rooms := make([]*Room, 0, len(reg.rooms))
	for _, r := range reg.rooms {
		rooms = append(rooms, r)
	}
	reg.mu.RUnlock()

	infos := make([]Info, 0, len(rooms))
	for _, r := range rooms {
		infos = append(infos, r.Info())
	}
	return infos
}
