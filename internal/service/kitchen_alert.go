package service

import "sync"

// KitchenAlerter decides when the kitchen display should ring. The first
// observation only sets the baseline.
type KitchenAlerter struct {
	mu     sync.Mutex
	primed bool
	last   int
}

func NewKitchenAlerter() *KitchenAlerter {
	return &KitchenAlerter{}
}

// Observe returns true exactly when the preparing count went up
func (a *KitchenAlerter) Observe(preparingCount int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.primed {
		a.primed = true
		a.last = preparingCount
		return false
	}
	increased := preparingCount > a.last
	a.last = preparingCount
	return increased
}
