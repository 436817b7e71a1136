package lawful

import "fmt"

// ClassConfig describes a new class.
type ClassConfig struct {
	// Name is used in diagnostics only; "Unnamed" when empty. Two classes
	// with the same name are still distinct classes.
	Name string

	// Extends lists prerequisite classes, validated before this class's own
	// laws, in declaration order.
	Extends []*Class

	// Laws holds this class's own, non-inherited laws. nil means no laws,
	// which always hold.
	Laws Validator
}

// Class is a named behavioral contract: the laws a candidate type must obey,
// plus the prerequisite classes it must already satisfy. Classes are built
// once, immutable afterwards, and safe to share across concurrent
// validations.
type Class struct {
	name    string
	parents []*Class
	laws    Validator
}

// NewClass builds a class from cfg, filling documented defaults.
//
// Prerequisites are referenced, never owned: a class graph is assembled
// bottom-up from already-built immutable classes, which is also why a
// prerequisite cycle cannot be constructed and needs no runtime guard.
func NewClass(cfg ClassConfig) *Class {
	name := cfg.Name
	if name == "" {
		name = "Unnamed"
	}
	laws := cfg.Laws
	if laws == nil {
		laws = All()
	}
	parents := make([]*Class, len(cfg.Extends))
	copy(parents, cfg.Extends)
	return &Class{name: name, parents: parents, laws: laws}
}

// Name returns the class's diagnostic name.
func (c *Class) Name() string {
	return c.name
}

// Validate checks inst against every prerequisite class and then against
// this class's own laws, using DefaultConfig.
func (c *Class) Validate(inst Instance) Result {
	return c.ValidateConfig(inst, DefaultConfig())
}

// ValidateConfig is Validate with explicit configuration.
//
// Prerequisites are validated recursively, in order, and their outcomes
// conjoined. The class's own laws run regardless of the prerequisite
// outcome, so one broken ancestor does not hide this class's own
// violations. On failure the combined diagnostics are prefixed with a
// message naming the candidate and this class, keeping nested prerequisite
// failures attributable in the final sequence.
//
// Failures are returned as data, never raised; converting a failure into an
// error is the registration boundary's job.
func (c *Class) ValidateConfig(inst Instance, cfg Config) Result {
	result := Success()
	for _, parent := range c.parents {
		result = result.Conjoin(parent.ValidateConfig(inst, cfg))
	}
	result = result.Conjoin(c.laws.Check(inst, cfg))

	if result.IsFailure() {
		result = Fail(fmt.Sprintf("%s is not an instance of %s",
			inst.displayName(), c.name)).Conjoin(result)
	}

	if cfg.Logger != nil {
		cfg.Logger.Debug("class validated",
			"class", c.name,
			"instance", inst.displayName(),
			"failures", len(result.Failures()))
	}
	return result
}
