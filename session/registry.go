package session

import "sync"

// Registry tracks the sessions currently connected to the shard, keyed by
// the session ID assigned at accept time.
type Registry struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
	}
}

func (r *Registry) AddSession(id string, session *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = session
}

func (r *Registry) GetSession(id string) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id]
}

func (r *Registry) RemoveSession(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

func (r *Registry) GetSessions() []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*Session, 0)
	for _, session := range r.sessions {
		sessions = append(sessions, session)
	}
	return sessions
}
