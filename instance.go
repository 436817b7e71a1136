package lawful

// Generator produces one fresh sample value of a candidate type.
// The hint increases across calls within a single validation so repeated
// trials are not forced to see identical values; beyond that, how values
// are produced is entirely the candidate type's business.
type Generator func(hint int) any

// Instance describes a candidate type submitted for validation: a name for
// diagnostics and a sample generator. The engine treats it as opaque: it
// only ever calls Generate and hands the produced values to law predicates.
type Instance struct {
	Name     string
	Generate Generator
}

func (i Instance) displayName() string {
	if i.Name == "" {
		return "unnamed instance"
	}
	return i.Name
}
