package lawful

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// num is the candidate type for the end-to-end scenarios. When broken is
// set, Equals lies about everything, including self-comparison.
type num struct {
	value  int
	broken bool
}

func (n num) Equals(o num) bool {
	if n.broken {
		return false
	}
	return n.value == o.value
}

func (n num) Add(o num) num {
	return num{value: n.value + o.value, broken: n.broken || o.broken}
}

func numInstance(name string, broken bool) Instance {
	return Instance{
		Name: name,
		Generate: func(hint int) any {
			return num{value: hint, broken: broken}
		},
	}
}

func eqClass() *Class {
	return NewClass(ClassConfig{
		Name: "Eq",
		Laws: ObeyNamed("reflexivity", func(x num) bool {
			return x.Equals(x)
		}),
	})
}

func addableClass(eq *Class) *Class {
	return NewClass(ClassConfig{
		Name:    "Addable",
		Extends: []*Class{eq},
		Laws: ObeyNamed("commutativity", func(x, y num) bool {
			return x.Add(y).Equals(y.Add(x))
		}),
	})
}

func TestRegister_LawfulInstance(t *testing.T) {
	registry := NewRegistry()
	eq := eqClass()
	inst := numInstance("Num", false)

	require.NoError(t, registry.Register(eq, inst))
	assert.True(t, registry.IsInstance("Num", eq))
}

func TestRegister_BrokenEquals(t *testing.T) {
	registry := NewRegistry()
	eq := eqClass()
	inst := numInstance("BrokenNum", true)

	err := registry.Register(eq, inst)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "BrokenNum")
	assert.Contains(t, err.Error(), "reflexivity")
	assert.False(t, registry.IsInstance("BrokenNum", eq),
		"a failing instance must not be recorded")
}

func TestRegister_PrerequisiteAndOwnFailuresBothSurface(t *testing.T) {
	registry := NewRegistry()
	eq := eqClass()
	addable := addableClass(eq)
	inst := numInstance("BrokenNum", true)

	err := registry.Register(addable, inst)

	require.Error(t, err)
	// The broken Equals sinks both the inherited reflexivity law and
	// Addable's own commutativity law, and both must be reported.
	assert.Contains(t, err.Error(), "Eq")
	assert.Contains(t, err.Error(), "reflexivity")
	assert.Contains(t, err.Error(), "Addable")
	assert.Contains(t, err.Error(), "commutativity")
}

func TestRegister_CorrectAddable(t *testing.T) {
	registry := NewRegistry()
	eq := eqClass()
	addable := addableClass(eq)
	inst := numInstance("Num", false)

	require.NoError(t, registry.Register(addable, inst))
	assert.True(t, registry.IsInstance("Num", addable))
}

func TestMustRegister_ReturnsInstanceUnchanged(t *testing.T) {
	registry := NewRegistry()
	eq := eqClass()
	inst := numInstance("Num", false)

	got := registry.MustRegister(eq, inst)

	assert.Equal(t, inst.Name, got.Name)
}

func TestMustRegister_PanicsWithDiagnostics(t *testing.T) {
	registry := NewRegistry()
	eq := eqClass()
	inst := numInstance("BrokenNum", true)

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected MustRegister to panic")
		msg := r.(string)
		assert.Contains(t, msg, "BrokenNum")
		assert.Contains(t, msg, "reflexivity")
	}()
	registry.MustRegister(eq, inst)
}

func TestRegistry_Classes(t *testing.T) {
	registry := NewRegistry()
	eq := eqClass()
	addable := addableClass(eq)
	inst := numInstance("Num", false)

	require.NoError(t, registry.Register(eq, inst))
	require.NoError(t, registry.Register(addable, inst))

	classes := registry.Classes("Num")
	require.Len(t, classes, 2)
	assert.Same(t, eq, classes[0])
	assert.Same(t, addable, classes[1])
	assert.Nil(t, registry.Classes("Unknown"))
}

func TestRegistry_DistinguishesClassesWithEqualNames(t *testing.T) {
	registry := NewRegistry()
	first := NewClass(ClassConfig{Name: "Eq"})
	second := NewClass(ClassConfig{Name: "Eq"})
	inst := numInstance("Num", false)

	require.NoError(t, registry.Register(first, inst))

	assert.True(t, registry.IsInstance("Num", first))
	assert.False(t, registry.IsInstance("Num", second),
		"name collisions are cosmetic; identity is per class value")
}

func TestDefaultRegistry_Conveniences(t *testing.T) {
	eq := eqClass()
	inst := numInstance("DefaultRegistryNum", false)

	require.NoError(t, Register(eq, inst))
	assert.True(t, IsInstance("DefaultRegistryNum", eq))

	got := MustRegister(eq, numInstance("DefaultRegistryNum2", false))
	assert.Equal(t, "DefaultRegistryNum2", got.Name)
}

func TestAssert_LawfulInstance(t *testing.T) {
	Assert(t, addableClass(eqClass()), numInstance("Num", false))
}
