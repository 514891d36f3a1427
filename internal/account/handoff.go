package account

import (
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// Handoff carries step one of the registration to step two. It belongs to
// a single Flow and lives only in memory. The payload is stored encoded so
// that a reader always gets an independent copy.
type Handoff struct {
	mu   sync.Mutex
	data []byte
}

// SaveStepOne replaces any previously saved step one.
func (h *Handoff) SaveStepOne(one RegisterStepOne) error {
	data, err := yaml.Marshal(one)
	if err != nil {
		return fmt.Errorf("failed to encode registration step one: %w", err)
	}

	h.mu.Lock()
	h.data = data
	h.mu.Unlock()
	return nil
}

// LoadStepOne returns the saved step one. It fails with ErrHandoffMissing
// when nothing was saved and ErrHandoffCorrupt when the payload does not
// decode.
func (h *Handoff) LoadStepOne() (RegisterStepOne, error) {
	h.mu.Lock()
	data := h.data
	h.mu.Unlock()

	var one RegisterStepOne
	if len(data) == 0 {
		return one, ErrHandoffMissing
	}
	if err := yaml.Unmarshal(data, &one); err != nil {
		return RegisterStepOne{}, fmt.Errorf("%w: %v", ErrHandoffCorrupt, err)
	}
	return one, nil
}

// Present reports whether a step one is saved.
func (h *Handoff) Present() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.data) > 0
}

// Clear discards the saved step one.
func (h *Handoff) Clear() {
	h.mu.Lock()
	h.data = nil
	h.mu.Unlock()
}
