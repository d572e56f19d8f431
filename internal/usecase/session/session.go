// Package session tracks per-session UI-facing state: the three preview
// slots and the in-flight loading counter.
package session

import "sync"

// Preview is one independently settable preview slot.

type Preview struct {
	Open    bool   `json:"open"`
	Content string `json:"content"`
}

// State is a read-only snapshot of the session.

type State struct {
	Loading   bool    `json:"loading"`
	Contract  Preview `json:"contract_preview"`
	Quotation Preview `json:"quotation_preview"`
	Review    Preview `json:"review_preview"`
}

// Session owns the preview and loading state for one user session.
//
// The three preview kinds are mutually independent: opening one never closes
// another, so a contract preview and a review preview can both be open at the
// same time. Closing a preview drops its content; reopening requires the
// controller to supply content again.
//
// Loading is a counter, not a flag, because the user may dispatch a new
// action while a generate/review call is still outstanding. Each flow calls
// Begin and must release via the returned func on every exit path.

type Session struct {
	mu        sync.Mutex
	loading   int
	contract  Preview
	quotation Preview
	review    Preview
}

func New() *Session {
	return &Session{}
}

// Begin marks a flow as in-flight and returns its release func. The release
// is idempotent so a deferred call cannot double-decrement.
func (s *Session) Begin() func() {
	s.mu.Lock()
	s.loading++
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.loading--
			s.mu.Unlock()
		})
	}
}

func (s *Session) ShowContract(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contract = Preview{Open: true, Content: content}
}

func (s *Session) ShowQuotation(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotation = Preview{Open: true, Content: content}
}

func (s *Session) ShowReview(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.review = Preview{Open: true, Content: content}
}

func (s *Session) CloseContract() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contract = Preview{}
}

func (s *Session) CloseQuotation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotation = Preview{}
}

func (s *Session) CloseReview() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.review = Preview{}
}

// Snapshot returns the current state for display.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Loading:   s.loading > 0,
		Contract:  s.contract,
		Quotation: s.quotation,
		Review:    s.review,
	}
}
