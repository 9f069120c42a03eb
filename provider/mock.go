package provider

import (
	"context"
	"fmt"
)

// MockFiller is a mock gap-fill backend for testing.
type MockFiller struct {
	Translations map[string]string // Map of source phrase to translation
	CallCount    int               // Number of times Fill was called
	LastRequest  *FillRequest      // Last request received
	Err          error             // If set, Fill returns this error
}

// NewMockFiller creates a new mock filler with default translations.
func NewMockFiller() *MockFiller {
	return &MockFiller{
		Translations: map[string]string{
			"Orokin":       "奥罗金",
			"Orokin Vault": "奥罗金宝库",
			"Void":         "虚空",
		},
	}
}

// Fill returns mock translations.
func (m *MockFiller) Fill(ctx context.Context, req FillRequest) ([]string, error) {
	m.CallCount++
	m.LastRequest = &req

	if m.Err != nil {
		return nil, m.Err
	}

	results := make([]string, len(req.Phrases))
	for i, phrase := range req.Phrases {
		if translation, ok := m.Translations[phrase]; ok {
			results[i] = translation
		} else {
			// Return bracketed text for unknown translations
			results[i] = fmt.Sprintf("[%s]", phrase)
		}
	}

	return results, nil
}

// Reset resets the call count and last request.
func (m *MockFiller) Reset() {
	m.CallCount = 0
	m.LastRequest = nil
}

// Verify MockFiller implements GapFiller
var _ GapFiller = (*MockFiller)(nil)
