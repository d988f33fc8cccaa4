// Package mocks provides testify-based mock implementations for testing
// the file menu without a terminal.
package mocks

import (
	"github.com/stretchr/testify/mock"
)

// LineReader is a mock for filemenu.LineReader.
type LineReader struct {
	mock.Mock
}

func (m *LineReader) ReadLine(prompt, seed string) (string, error) {
	args := m.Called(prompt, seed)
	return args.String(0), args.Error(1)
}

func (m *LineReader) AddHistory(entry string) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *LineReader) ClearHistory() {
	m.Called()
}
