package enumwire

import (
	"reflect"
	"sync"
)

// Registry holds the configuration flags plus a write-once descriptor cache
// keyed by type identity. Descriptors are built lazily on first use and at
// most once per type; concurrent first use never observes a partially built
// descriptor. Build failures are not cached so a corrected registration can
// retry.
type Registry struct {
	flags Flags

	mu     sync.RWMutex
	byType map[reflect.Type]any
}

// NewRegistry returns a registry with the given flags.
func NewRegistry(flags Flags) *Registry {
	return &Registry{flags: flags, byType: make(map[reflect.Type]any)}
}

// Flags returns the registry configuration.
func (r *Registry) Flags() Flags { return r.flags }

// Policy returns the default per-call policy derived from the registry flags.
func (r *Registry) Policy() Policy { return r.flags.Policy() }

// DescriptorOf returns the cached descriptor for E, building it on first use.
// The constants and options only matter on the building call; later calls for
// the same type return the original descriptor untouched.
func DescriptorOf[E comparable](r *Registry, name string, constants []Constant[E], opts ...DescriptorOption[E]) (*Descriptor[E], error) {
	key := reflect.TypeOf((*E)(nil)).Elem()

	r.mu.RLock()
	cached, ok := r.byType[key]
	r.mu.RUnlock()
	if ok {
		return cached.(*Descriptor[E]), nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.byType[key]; ok {
		return cached.(*Descriptor[E]), nil
	}
	d, err := NewDescriptor[E](name, constants, r.flags, opts...)
	if err != nil {
		return nil, err
	}
	r.byType[key] = d
	return d, nil
}

// Lookup returns the cached descriptor for E without building.
func Lookup[E comparable](r *Registry) (*Descriptor[E], bool) {
	key := reflect.TypeOf((*E)(nil)).Elem()
	r.mu.RLock()
	cached, ok := r.byType[key]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return cached.(*Descriptor[E]), true
}
