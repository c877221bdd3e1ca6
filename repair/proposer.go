// Package repair implements the escalation boundary to an external repair
// proposer. The deterministic core never calls the proposer on its own;
// escalation is invoked explicitly for fail-verdict items, and every
// candidate the proposer returns is treated as untrusted input:
// sanitized, normalized, and re-validated through the full item runner
// before acceptance.
package repair

import (
	"context"
	"sync"

	"github.com/clinsim/itemqa/item"
	"github.com/clinsim/itemqa/quality"
)

// Proposer is the narrow interface to the external repair strategy. Given
// a failing item and its diagnostic report, it returns candidate
// replacement content as text, typically JSON, possibly wrapped in
// markdown fences when the implementation is LLM-backed.
type Proposer interface {
	// Name returns the proposer identifier for registry lookup.
	Name() string

	// Propose returns a candidate replacement for the failing item.
	Propose(ctx context.Context, it *item.Item, report quality.ItemReport) (string, error)
}

var (
	proposerRegistry = make(map[string]Proposer)
	proposerMu       sync.RWMutex
)

// RegisterProposer adds a proposer to the registry.
func RegisterProposer(p Proposer) {
	proposerMu.Lock()
	defer proposerMu.Unlock()
	proposerRegistry[p.Name()] = p
}

// GetProposer retrieves a proposer by name, or nil when unregistered.
func GetProposer(name string) Proposer {
	proposerMu.RLock()
	defer proposerMu.RUnlock()
	return proposerRegistry[name]
}

// ListProposers returns all registered proposer names.
func ListProposers() []string {
	proposerMu.RLock()
	defer proposerMu.RUnlock()

	names := make([]string, 0, len(proposerRegistry))
	for name := range proposerRegistry {
		names = append(names, name)
	}
	return names
}
