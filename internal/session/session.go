package session

import "time"

// Session is the per-user dialogue aggregate. One instance tracks an
// in-flight multi-turn exchange: the classified intent and the slots
// gathered for it so far.
type Session struct {
	UserID       string
	Intent       string
	SubIntent    string
	AwaitingSlot string
	FilledSlots  map[string]string
	Attempts     int
	UpdatedAt    time.Time
}

// New creates an empty session for a user
func New(userID string) *Session {
	return &Session{
		UserID:      userID,
		FilledSlots: map[string]string{},
		UpdatedAt:   time.Now(),
	}
}

// MergeSlots folds extracted values into FilledSlots. Filled slots are
// monotone: an empty or "null" value never overwrites an earlier one.
func (s *Session) MergeSlots(extracted map[string]string) {
	if s.FilledSlots == nil {
		s.FilledSlots = map[string]string{}
	}
	for name, value := range extracted {
		if value == "" || value == "null" {
			continue
		}
		s.FilledSlots[name] = value
	}
	s.UpdatedAt = time.Now()
}

// Store keeps per-user session aggregates. Implementations are safe for
// concurrent use.
type Store interface {
	Get(userID string) (*Session, bool)
	Put(userID string, s *Session)
	Delete(userID string)
	Has(userID string) bool
}
