package notify

// MockNotifier records notifications for tests instead of printing.
type MockNotifier struct {
	Successes []string
	Errors    []string
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (n *MockNotifier) Success(msg string) {
	n.Successes = append(n.Successes, msg)
}

func (n *MockNotifier) Error(msg string) {
	n.Errors = append(n.Errors, msg)
}

// Reset drops everything recorded so far.
func (n *MockNotifier) Reset() {
	n.Successes = nil
	n.Errors = nil
}
