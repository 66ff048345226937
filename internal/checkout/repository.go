package checkout

import "sync"

// DraftStore keeps per-session checkout drafts in memory only: a draft is
// deliberately not persisted across restarts or shared between sessions.
type DraftStore struct {
	mu     sync.RWMutex
	drafts map[string]Draft
}

func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[string]Draft)}
}

// Get returns the session's draft, creating a fresh one at step 1 if none
// exists yet.
func (s *DraftStore) Get(sessionID string) Draft {
	s.mu.RLock()
	d, ok := s.drafts[sessionID]
	s.mu.RUnlock()
	if !ok {
		d = Draft{Step: StepCustomerInfo}
	}
	return d
}

func (s *DraftStore) Put(sessionID string, d Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[sessionID] = d
}

func (s *DraftStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
}
