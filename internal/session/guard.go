package session

import "errors"

// ErrNotLoggedIn means no usable session is stored.
var ErrNotLoggedIn = errors.New("not logged in: run `aidetect login`")

// ErrForbidden means the stored session lacks the required role.
var ErrForbidden = errors.New("this command requires an admin account")

// Require returns the stored session or ErrNotLoggedIn. It must run before a
// command does any work, the same way a protected page checks credentials
// before rendering.
func (s *Store) Require() (*Session, error) {
	sess, err := s.Load()
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNotLoggedIn
	}
	return sess, nil
}

// RequireRole returns the stored session only if its role is in the permitted
// set. A valid token with the wrong role still fails.
func (s *Store) RequireRole(roles ...string) (*Session, error) {
	sess, err := s.Require()
	if err != nil {
		return nil, err
	}
	for _, r := range roles {
		if sess.User.Role == r {
			return sess, nil
		}
	}
	return nil, ErrForbidden
}
