package coupon

import "strings"

// ServiceInterface lists the coupon operations other packages depend on.
type ServiceInterface interface {
	Active(sessionID string) (Coupon, bool)
	Remove(sessionID string)
}

// Service validates coupon codes against the rule table and tracks the
// single coupon applied per session.
type Service struct {
	rules   RuleRepository
	applied *SessionStore
}

func NewService(rules RuleRepository) *Service {
	return &Service{rules: rules, applied: NewSessionStore()}
}

// Apply validates code and, on a match, makes it the session's active
// coupon, replacing any prior one. Failure is reported through the boolean,
// never an error: an unknown, empty or whitespace-only code leaves the
// session state untouched. Matching is case-sensitive.
func (s *Service) Apply(sessionID, code string) (Coupon, bool) {
	if sessionID == "" || strings.TrimSpace(code) == "" {
		return Coupon{}, false
	}
	c, err := s.rules.Lookup(code)
	if err != nil {
		return Coupon{}, false
	}
	s.applied.Set(sessionID, c)
	return c, true
}

// Remove clears the session's active coupon unconditionally.
func (s *Service) Remove(sessionID string) {
	s.applied.Clear(sessionID)
}

// Active returns the session's applied coupon, if any.
func (s *Service) Active(sessionID string) (Coupon, bool) {
	return s.applied.Get(sessionID)
}
