package record

import (
	"context"
	"fmt"
	"time"
)

// Meta is the kind-independent view of a record used by the approval
// workflow: identity plus current approval status.
type Meta struct {
	Kind           Kind
	ID             uint
	ApprovalStatus Status
	UpdatedAt      time.Time
}

// Store is the capability a record kind must provide to participate in the
// approval workflow. Each kind registers exactly one Store in the Registry.
type Store interface {
	// GetMeta returns the record's meta, or nil when the id does not exist.
	GetMeta(ctx context.Context, id uint) (*Meta, error)

	// UpdateApprovalStatus performs a compare-and-swap status write:
	// UPDATE ... SET approval_status = to WHERE id = ? AND approval_status = from.
	// It returns false when zero rows were affected, which means either a
	// concurrent transition won the race or the record no longer exists.
	UpdateApprovalStatus(ctx context.Context, id uint, from, to Status) (bool, error)
}

// Registry resolves a Kind to its Store. Resolution happens once per
// request at the engine boundary; nothing downstream dispatches on strings.
type Registry struct {
	stores map[Kind]Store
}

func NewRegistry() *Registry {
	return &Registry{stores: make(map[Kind]Store)}
}

// Register binds a store to a kind. Later registrations for the same kind
// replace earlier ones; wiring happens once at startup.
func (r *Registry) Register(kind Kind, store Store) {
	r.stores[kind] = store
}

// StoreFor returns the store registered for the kind.
func (r *Registry) StoreFor(kind Kind) (Store, error) {
	store, ok := r.stores[kind]
	if !ok {
		return nil, fmt.Errorf("no store registered for record kind %q", kind)
	}
	return store, nil
}
