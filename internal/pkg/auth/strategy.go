package auth

import "time"

// Strategy issues and verifies session tokens. The subject is the
// username bound to the session at login time.
type Strategy interface {
	IssueToken(subject string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
