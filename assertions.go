package lawful

import "testing"

// Assert validates inst against c and fails the test with the full
// diagnostic sequence when the contract does not hold. It is the test-time
// counterpart of Register: same check, reported through testing.T instead of
// an error.
func Assert(t *testing.T, c *Class, inst Instance) {
	t.Helper()
	AssertWith(t, c, inst, DefaultConfig())
}

// AssertWith is Assert with explicit configuration.
func AssertWith(t *testing.T, c *Class, inst Instance, cfg Config) {
	t.Helper()

	result := c.ValidateConfig(inst, cfg)
	if result.IsFailure() {
		for _, msg := range result.Failures() {
			t.Errorf("%s", msg)
		}
		return
	}

	t.Logf("✓ %s is a lawful %s (%d trials per law)", inst.displayName(), c.Name(), cfg.trials())
}
