package testutil

import (
	"testing"

	"github.com/kbukum/microinjection/injection"
)

// ExpectOnly returns a miss handler that reports a test error for every
// lookup of a key outside allowed. Allowed keys fall through to their
// defaults.
func ExpectOnly(t testing.TB, allowed ...injection.KeyDescriptor) injection.MissHandler {
	ids := make(map[string]bool, len(allowed))
	for _, k := range allowed {
		ids[k.ID()] = true
	}
	return func(key injection.KeyDescriptor) any {
		if !ids[key.ID()] {
			t.Errorf("unexpected lookup of %s", key)
		}
		return nil
	}
}

// AssertGet fails the test when key does not resolve to want in values.
func AssertGet[V comparable](t testing.TB, values injection.Values, key *injection.Key[V], want V) {
	t.Helper()
	if got := injection.Get(values, key); got != want {
		t.Errorf("%s: expected %v, got %v", key, want, got)
	}
}

// AssertCalls fails the test when rec did not see exactly want lookups of key.
func AssertCalls(t testing.TB, rec *Recorder, key injection.KeyDescriptor, want int) {
	t.Helper()
	if got := rec.Calls(key); got != want {
		t.Errorf("%s: expected %d lookups, got %d", key, want, got)
	}
}
