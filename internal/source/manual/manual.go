package manual

import (
	"context"
	"sync"

	"vindec/internal/source"
	"vindec/internal/vin"
)

// Manual is a Source backed by text typed by the user.
type Manual struct {
	mu   sync.RWMutex
	text string
}

func New(text string) *Manual {
	return &Manual{text: text}
}

var _ source.Source = (*Manual)(nil)

func (m *Manual) Name() string {
	return "manual input"
}

// Set replaces the typed text.
func (m *Manual) Set(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
}

// ReadVIN returns the normalized text. Validation is left to the decoder.
func (m *Manual) ReadVIN(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return vin.Normalize(m.text), nil
}
