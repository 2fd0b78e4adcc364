package services

import (
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/journal_lifecycle_app/internal/apperrors"
	"github.com/SscSPs/journal_lifecycle_app/internal/observability/metrics"
)

// ActionKind names a user action that may be in flight.
type ActionKind string

const (
	ActionDelete       ActionKind = "delete"
	ActionBulkGenerate ActionKind = "bulk-generate"
	ActionSaveEdit     ActionKind = "save-edit"
	ActionApprove      ActionKind = "approve"
	ActionMarkPosted   ActionKind = "mark-posted"
	ActionMoveToDraft  ActionKind = "move-to-draft"
	ActionPostEntry    ActionKind = "post-entry"
)

type actionKey struct {
	scope  string
	kind   ActionKind
	entity string
}

// InFlightGuard tracks which (action, entity) pairs are running.
// It rejects a second start of the same pair; different actions on the same
// entity may run concurrently.
type InFlightGuard struct {
	mu        sync.Mutex
	active    map[actionKey]struct{}
	perEntity map[string]int
}

// NewInFlightGuard creates an empty guard.
func NewInFlightGuard() *InFlightGuard {
	return &InFlightGuard{
		active:    make(map[actionKey]struct{}),
		perEntity: make(map[string]int),
	}
}

// TryEnter marks the pair as running and returns the function that clears it.
// It returns apperrors.ErrActionInProgress if the pair is already running.
func (g *InFlightGuard) TryEnter(scope string, kind ActionKind, entityID string) (func(), error) {
	key := actionKey{scope: scope, kind: kind, entity: entityID}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.active[key]; busy {
		metrics.IncInFlightRejected(string(kind))
		return nil, fmt.Errorf("%w: %s %s", apperrors.ErrActionInProgress, kind, entityID)
	}
	g.active[key] = struct{}{}
	g.perEntity[entityID]++

	var once sync.Once
	return func() {
		once.Do(func() { g.exit(key) })
	}, nil
}

func (g *InFlightGuard) exit(key actionKey) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.active, key)
	if g.perEntity[key.entity] <= 1 {
		delete(g.perEntity, key.entity)
		return
	}
	g.perEntity[key.entity]--
}

// IsBusy reports whether any action is running for the entity.
func (g *InFlightGuard) IsBusy(entityID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.perEntity[entityID] > 0
}

// Pending lists the running pairs of a scope as sorted "<action>:<entity>" strings.
func (g *InFlightGuard) Pending(scope string) []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []string
	for key := range g.active {
		if key.scope == scope {
			out = append(out, string(key.kind)+":"+key.entity)
		}
	}
	sort.Strings(out)
	return out
}
