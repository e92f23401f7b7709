package template

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/quill-dev/quill/pkg/rdom"
)

// Registry errors.
var (
	// ErrDuplicateTemplate reports a second registration under an ID.
	// Registration happens at process start; hitting this is a
	// programmer error, so most callers go through MustRegister.
	ErrDuplicateTemplate = errors.New("template: duplicate template id")

	// ErrUnknownTemplate reports a lookup of an unregistered ID.
	ErrUnknownTemplate = errors.New("template: unknown template id")

	// ErrInvalidTemplate reports a registration with an empty ID or
	// nil entry point.
	ErrInvalidTemplate = errors.New("template: invalid registration")
)

// EntryPoint maps a serialized payload to a render tree. The payload
// encoding is application-chosen; see JSON for the common case.
type EntryPoint func(payload []byte) (*rdom.Node, error)

// Registry is a process-wide map from template ID to entry point.
// It is built once at startup and read-only thereafter; Resolve takes
// a read lock only to keep late registration safe rather than
// undefined.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]EntryPoint
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]EntryPoint)}
}

// Register adds an entry point under id. It fails with
// ErrDuplicateTemplate if id is already present and ErrInvalidTemplate
// if id is empty or entry is nil.
func (r *Registry) Register(id string, entry EntryPoint) error {
	if id == "" || entry == nil {
		return fmt.Errorf("%w: id=%q entry=%v", ErrInvalidTemplate, id, entry == nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTemplate, id)
	}
	r.entries[id] = entry
	return nil
}

// MustRegister is Register but panics on error. Use it in init-time
// registration, where a duplicate ID is a fatal misconfiguration.
func (r *Registry) MustRegister(id string, entry EntryPoint) {
	if err := r.Register(id, entry); err != nil {
		panic(err)
	}
}

// Resolve returns the entry point registered under id.
func (r *Registry) Resolve(id string) (EntryPoint, error) {
	r.mu.RLock()
	entry, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}
	return entry, nil
}

// IDs returns the registered template IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Default is the process-wide registry used by the child render loop.
var Default = NewRegistry()

// Register adds an entry point to the default registry.
func Register(id string, entry EntryPoint) error {
	return Default.Register(id, entry)
}

// MustRegister adds an entry point to the default registry, panicking
// on error.
func MustRegister(id string, entry EntryPoint) {
	Default.MustRegister(id, entry)
}

// Resolve looks up an entry point in the default registry.
func Resolve(id string) (EntryPoint, error) {
	return Default.Resolve(id)
}
