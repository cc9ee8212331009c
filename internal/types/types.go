package types

// TokenSource yields the bearer token attached to authenticated API
// requests. ok is false when no usable token is available (signed out,
// or the stored token has expired).
type TokenSource interface {
	Token() (token string, ok bool)
}

// Notifier surfaces operation outcomes to the user. It is the
// terminal-world equivalent of the storefront's toast notifications.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NoToken is a TokenSource that never has a token, for anonymous reads.
type NoToken struct{}

func (NoToken) Token() (string, bool) { return "", false }

// StaticToken is a TokenSource wrapping a fixed token, mainly for tests.
type StaticToken string

func (t StaticToken) Token() (string, bool) { return string(t), t != "" }
