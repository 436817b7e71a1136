package lawful

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Validator is one checkable requirement on a candidate type. Validators are
// immutable, stateless between calls, and safe to share across any number of
// concurrent Check calls.
type Validator interface {
	// Check runs the requirement against inst and reports the outcome.
	Check(inst Instance, cfg Config) Result
}

// All combines child validators into one that holds only when every child
// holds. Every child is always checked, so a failing child does not hide the
// failures of its siblings, and their diagnostics are concatenated in
// declaration order. All() with no children always succeeds.
func All(validators ...Validator) Validator {
	children := make([]Validator, len(validators))
	copy(children, validators)
	return allValidator{children: children}
}

type allValidator struct {
	children []Validator
}

func (a allValidator) Check(inst Instance, cfg Config) Result {
	result := Success()
	for _, child := range a.children {
		result = result.Conjoin(child.Check(inst, cfg))
	}
	return result
}

// Obey turns a predicate into an empirically checked law.
//
// The predicate must be a non-variadic function returning exactly one bool.
// Its parameter count k is the law's arity: each trial draws k fresh samples
// from the candidate's generator and passes them as the arguments. k = 0 is
// legal and means the predicate is simply invoked with no samples.
//
// Checking runs cfg.Trials trials and stops at the first counterexample: a
// trial where the predicate returns false, panics, or cannot be applied to
// the generated values. Only the sampled inputs are ever covered; a passing
// law raises confidence, it proves nothing.
//
// Obey panics if the predicate does not have a usable shape; that is a
// programming error in the contract, not a law violation.
func Obey(predicate any) Validator {
	return ObeyNamed("", predicate)
}

// ObeyNamed is Obey with an explicit law name for diagnostics. Obey derives
// the name from the predicate's function symbol, which is unhelpful for
// closures; name those here.
func ObeyNamed(name string, predicate any) Validator {
	fn := reflect.ValueOf(predicate)
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		panic(fmt.Sprintf("lawful: Obey wants a predicate function, got %T", predicate))
	}
	t := fn.Type()
	if t.IsVariadic() {
		panic("lawful: Obey cannot infer the arity of a variadic predicate")
	}
	if t.NumOut() != 1 || t.Out(0).Kind() != reflect.Bool {
		panic(fmt.Sprintf("lawful: predicate must return exactly one bool, got %s", t))
	}
	if name == "" {
		name = funcName(fn)
	}
	return &law{name: name, fn: fn, arity: t.NumIn()}
}

// law is one algebraic property checked by sampling.
type law struct {
	name  string
	fn    reflect.Value
	arity int
}

func (l *law) Check(inst Instance, cfg Config) Result {
	trials := cfg.trials()
	hint := 0

	for trial := 0; trial < trials; trial++ {
		ok, inputs, err := l.runTrial(inst, &hint)
		if err != nil {
			return Fail(fmt.Sprintf("law %s errored on trial %d/%d (inputs %s): %v",
				l.name, trial+1, trials, formatInputs(inputs), err))
		}
		if !ok {
			if cfg.Logger != nil {
				cfg.Logger.Debug("law violated",
					"law", l.name, "instance", inst.displayName(), "trial", trial+1)
			}
			return Fail(fmt.Sprintf("law %s violated on trial %d/%d (inputs %s)",
				l.name, trial+1, trials, formatInputs(inputs)))
		}
	}

	if cfg.Logger != nil {
		cfg.Logger.Debug("law held",
			"law", l.name, "instance", inst.displayName(), "trials", trials)
	}
	return Success()
}

// runTrial draws the samples for one trial and applies the predicate.
// A panic anywhere in the trial (generator, predicate, or applying
// mismatched sample types) is returned as the trial error so one broken
// method cannot abort validation of unrelated laws.
func (l *law) runTrial(inst Instance, hint *int) (ok bool, inputs []any, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			err = fmt.Errorf("%v", r)
		}
	}()

	args := make([]reflect.Value, l.arity)
	inputs = make([]any, 0, l.arity)
	for i := 0; i < l.arity; i++ {
		v := inst.Generate(*hint)
		*hint++
		inputs = append(inputs, v)
		if v == nil {
			args[i] = reflect.Zero(l.fn.Type().In(i))
		} else {
			args[i] = reflect.ValueOf(v)
		}
	}

	out := l.fn.Call(args)
	return out[0].Bool(), inputs, nil
}

// formatInputs renders the sampled values for a failure message.
func formatInputs(inputs []any) string {
	if len(inputs) == 0 {
		return "none"
	}
	parts := make([]string, len(inputs))
	for i, v := range inputs {
		parts[i] = fmt.Sprintf("%#v", v)
	}
	return strings.Join(parts, ", ")
}

// funcName resolves a predicate's symbol for diagnostics, trimmed of its
// package path prefix.
func funcName(fn reflect.Value) string {
	f := runtime.FuncForPC(fn.Pointer())
	if f == nil {
		return "anonymous"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
