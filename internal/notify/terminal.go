package notify

import "fmt"

// TerminalNotifier prints outcomes to stdout, the CLI's stand-in for
// the storefront's toast popups.
type TerminalNotifier struct{}

func NewTerminalNotifier() *TerminalNotifier {
	return &TerminalNotifier{}
}

func (n *TerminalNotifier) Success(msg string) {
	fmt.Printf("✅ %s\n", msg)
}

func (n *TerminalNotifier) Error(msg string) {
	fmt.Printf("❌ %s\n", msg)
}
