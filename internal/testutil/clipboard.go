package testutil

import "github.com/ndewijer/VAT-Calculator-Backend/internal/clipboard"

var _ clipboard.Writer = (*MockClipboard)(nil)

// MockClipboard is an in-memory clipboard.Writer for testing.
type MockClipboard struct {
	// MockError is the error to return from WriteText
	MockError error
	// Written holds every successfully written text, oldest first
	Written []string
}

// NewMockClipboard creates a mock clipboard that accepts every write.
func NewMockClipboard() *MockClipboard {
	return &MockClipboard{}
}

// WriteText records text, or returns MockError when set.
func (m *MockClipboard) WriteText(text string) error {
	if m.MockError != nil {
		return m.MockError
	}
	m.Written = append(m.Written, text)
	return nil
}

// WithError configures the mock to return the specified error.
func (m *MockClipboard) WithError(err error) *MockClipboard {
	m.MockError = err
	return m
}

// Last returns the most recently written text, or "" when nothing was written.
func (m *MockClipboard) Last() string {
	if len(m.Written) == 0 {
		return ""
	}
	return m.Written[len(m.Written)-1]
}
