// Package auth implements the shared-password login check for the two
// household users.
package auth

import (
	"crypto/subtle"
	"errors"
	"strings"
)

// Gate accepts exactly two users. Each one logs in with the other's name
// as the password.
type Gate struct {
	users [2]string
}

// NewGate builds a Gate for the two given user names.
func NewGate(users []string) (Gate, error) {
	if len(users) != 2 {
		return Gate{}, errors.New("exactly two users are required")
	}

	a, b := strings.TrimSpace(users[0]), strings.TrimSpace(users[1])
	if a == "" || b == "" {
		return Gate{}, errors.New("user names must not be empty")
	}
	if a == b {
		return Gate{}, errors.New("user names must be distinct")
	}

	return Gate{users: [2]string{a, b}}, nil
}

// Users returns the two configured user names.
func (g Gate) Users() []string {
	return []string{g.users[0], g.users[1]}
}

// Check reports whether the credentials are valid.
func (g Gate) Check(user, password string) bool {
	for i, name := range g.users {
		partner := g.users[1-i]
		if equal(user, name) && equal(password, partner) {
			return true
		}
	}
	return false
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
