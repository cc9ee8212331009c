// Package notify carries operation outcomes to the user.
package notify

import (
	"fmt"

	"github.com/sokastore/soka/internal/types"
)

// Silent discards all notifications; the gateway server uses it since
// HTTP responses already carry the outcome.
type Silent struct{}

func (Silent) Success(msg string) {}
func (Silent) Error(msg string)   {}

// NewNotifier creates a notifier by provider name.
func NewNotifier(provider string) (types.Notifier, error) {
	switch provider {
	case "terminal":
		return NewTerminalNotifier(), nil
	case "mock":
		return NewMockNotifier(), nil
	case "silent":
		return Silent{}, nil
	default:
		return nil, fmt.Errorf("unsupported notifier provider: %s", provider)
	}
}

var (
	_ types.Notifier = (*TerminalNotifier)(nil)
	_ types.Notifier = (*MockNotifier)(nil)
	_ types.Notifier = Silent{}
)
