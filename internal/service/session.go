package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "member-history-backend/internal/errors"
	"member-history-backend/internal/logger"
	"member-history-backend/internal/models"
)

// ViewState is what one client session currently shows.
type ViewState struct {
	SessionID        string            `json:"session_id"`
	Query            string            `json:"query,omitempty"`
	SearchResults    []models.Member   `json:"search_results"`
	SelectedMemberID int               `json:"selected_member_id,omitempty"`
	Timeline         *TimelineResponse `json:"timeline,omitempty"`
	Loading          bool              `json:"loading"`
	Error            string            `json:"error,omitempty"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

type session struct {
	state      ViewState
	generation uint64
	cancel     context.CancelFunc
	lastSeen   time.Time
}

// SessionStore keeps one ViewState per session. Selecting a member cancels
// the session's previous in-flight selection, and results of superseded
// selections are discarded.
type SessionStore struct {
	history HistoryServiceInterface
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// NewSessionStore creates a new session store. Sessions idle for longer than
// ttl are evicted.
func NewSessionStore(history HistoryServiceInterface, ttl time.Duration) *SessionStore {
	return &SessionStore{
		history:  history,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Create starts a new empty session.
func (s *SessionStore) Create() *ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpired()
	sess := s.getOrCreate(uuid.NewString())
	return s.snapshot(sess)
}

// Get returns the current view state of a session.
func (s *SessionStore) Get(sessionID string) (*ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpired()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	sess.lastSeen = s.now()
	return s.snapshot(sess), nil
}

// Search runs a member search and stores the results in the session.
func (s *SessionStore) Search(ctx context.Context, sessionID, name string) (*ViewState, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}
	result, err := s.history.SearchMembers(ctx, name)

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getOrCreate(sessionID)
	sess.state.Query = name
	if err != nil {
		sess.state.Error = err.Error()
		sess.state.UpdatedAt = s.now()
		return s.snapshot(sess), err
	}
	sess.state.SearchResults = result.Members
	sess.state.Error = ""
	sess.state.UpdatedAt = s.now()
	return s.snapshot(sess), nil
}

// Select loads a member's timeline into the session. If another Select for
// the same session starts before this one finishes, this one is cancelled
// and returns ErrSelectionSuperseded.
func (s *SessionStore) Select(ctx context.Context, sessionID string, memberID int) (*ViewState, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	sess := s.getOrCreate(sessionID)
	if sess.cancel != nil {
		sess.cancel()
	}
	sess.generation++
	generation := sess.generation
	selectCtx, cancel := context.WithCancel(ctx)
	sess.cancel = cancel
	sess.state.SelectedMemberID = memberID
	sess.state.Timeline = nil
	sess.state.Error = ""
	sess.state.Loading = true
	sess.state.UpdatedAt = s.now()
	s.mu.Unlock()

	defer cancel()
	tl, err := s.history.GetTimeline(selectCtx, memberID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessions[sessionID] != sess || sess.generation != generation {
		logger.WithContext(ctx).Debugf("Discarding superseded selection of member %d in session %s", memberID, sessionID)
		return nil, apperrors.ErrSelectionSuperseded
	}

	sess.cancel = nil
	sess.state.Loading = false
	sess.state.UpdatedAt = s.now()
	if err != nil {
		sess.state.Error = err.Error()
		return s.snapshot(sess), err
	}
	sess.state.Timeline = tl
	return s.snapshot(sess), nil
}

// Forget drops a session and cancels its in-flight selection.
func (s *SessionStore) Forget(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[sessionID]; ok {
		if sess.cancel != nil {
			sess.cancel()
		}
		delete(s.sessions, sessionID)
	}
}

// getOrCreate must be called with mu held.
func (s *SessionStore) getOrCreate(sessionID string) *session {
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{state: ViewState{
			SessionID:     sessionID,
			SearchResults: []models.Member{},
			UpdatedAt:     s.now(),
		}}
		s.sessions[sessionID] = sess
	}
	sess.lastSeen = s.now()
	return sess
}

// evictExpired must be called with mu held.
func (s *SessionStore) evictExpired() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) && sess.cancel == nil {
			delete(s.sessions, id)
		}
	}
}

func (s *SessionStore) snapshot(sess *session) *ViewState {
	state := sess.state
	state.SearchResults = append([]models.Member{}, sess.state.SearchResults...)
	return &state
}

func validateSessionID(sessionID string) error {
	if sessionID == "" || len(sessionID) > 64 {
		return apperrors.NewValidationError("session", "must be between 1 and 64 characters")
	}
	return nil
}
