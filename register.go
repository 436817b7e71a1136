package lawful

import (
	"fmt"
	"sync"
)

// Registry records which candidate types have been validated against which
// classes. It is the one mutable object in the package; validation itself
// only reads the immutable class graph.
type Registry struct {
	mu        sync.RWMutex
	satisfied map[string][]*Class // instance name -> classes it satisfies
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		satisfied: make(map[string][]*Class),
	}
}

// Register validates inst against c and records the instance on success.
// On failure it returns an error carrying every failure message, joined.
// This is the single point where validation outcomes become errors.
func (r *Registry) Register(c *Class, inst Instance) error {
	return r.RegisterConfig(c, inst, DefaultConfig())
}

// RegisterConfig is Register with explicit configuration.
func (r *Registry) RegisterConfig(c *Class, inst Instance, cfg Config) error {
	result := c.ValidateConfig(inst, cfg)
	if result.IsFailure() {
		return fmt.Errorf("%s", result)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.satisfied[inst.Name] = append(r.satisfied[inst.Name], c)
	return nil
}

// MustRegister is Register in decorator form: it panics with the joined
// failure messages, and on success returns the instance unchanged so call
// sites can register at the point of declaration.
func (r *Registry) MustRegister(c *Class, inst Instance) Instance {
	if err := r.Register(c, inst); err != nil {
		panic("lawful: " + err.Error())
	}
	return inst
}

// IsInstance reports whether an instance with the given name has been
// registered against c.
func (r *Registry) IsInstance(name string, c *Class) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, class := range r.satisfied[name] {
		if class == c {
			return true
		}
	}
	return false
}

// Classes returns the classes a named instance has been registered against,
// in registration order.
func (r *Registry) Classes(name string) []*Class {
	r.mu.RLock()
	defer r.mu.RUnlock()
	classes := r.satisfied[name]
	if len(classes) == 0 {
		return nil
	}
	out := make([]*Class, len(classes))
	copy(out, classes)
	return out
}

// Default registry (optional convenience).
var defaultRegistry = NewRegistry()

// Register validates and records against the default registry.
func Register(c *Class, inst Instance) error {
	return defaultRegistry.Register(c, inst)
}

// MustRegister validates against the default registry, panicking on failure.
func MustRegister(c *Class, inst Instance) Instance {
	return defaultRegistry.MustRegister(c, inst)
}

// IsInstance queries the default registry.
func IsInstance(name string, c *Class) bool {
	return defaultRegistry.IsInstance(name, c)
}
