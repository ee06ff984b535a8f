package testutil

import (
	"fmt"
	"sync"
	"testing"

	"github.com/kbukum/microinjection/injection"
)

var (
	greetingKey = injection.NewKey("greeting", "hello")
	retriesKey  = injection.NewKey("retries", 3)
)

// recordingTB captures Errorf calls instead of failing the test.
type recordingTB struct {
	testing.TB
	errors []string
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func TestRecorderCountsLookups(t *testing.T) {
	rec := NewRecorder()
	values := injection.New(injection.WithMissHandler(rec.Handler()))

	if got := injection.Get(values, greetingKey); got != "hello" {
		t.Errorf("expected default greeting, got %q", got)
	}
	injection.Get(values, retriesKey)
	injection.Get(values, greetingKey)

	AssertCalls(t, rec, greetingKey, 2)
	AssertCalls(t, rec, retriesKey, 1)
	if rec.Total() != 3 {
		t.Errorf("expected 3 calls, got %d", rec.Total())
	}

	keys := rec.Keys()
	if len(keys) != 3 || keys[0].ID() != greetingKey.ID() || keys[1].ID() != retriesKey.ID() {
		t.Errorf("unexpected lookup order %v", keys)
	}
}

func TestRecorderReturnsCannedValues(t *testing.T) {
	rec := NewRecorder().Return(greetingKey, "hi")
	values := injection.New(injection.WithMissHandler(rec.Handler()))

	AssertGet(t, values, greetingKey, "hi")
	AssertGet(t, values, retriesKey, 3)
}

func TestRecorderNotCalledForStoredKeys(t *testing.T) {
	rec := NewRecorder()
	values := injection.New(injection.WithMissHandler(rec.Handler()))
	injection.Set(&values, retriesKey, 7)

	AssertGet(t, values, retriesKey, 7)
	AssertCalls(t, rec, retriesKey, 0)
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder().Return(greetingKey, "hi")
	values := injection.New(injection.WithMissHandler(rec.Handler()))
	injection.Get(values, greetingKey)

	rec.Reset()
	if rec.Total() != 0 || rec.Calls(greetingKey) != 0 {
		t.Errorf("expected no calls after reset, got %d", rec.Total())
	}
	AssertGet(t, values, greetingKey, "hi")
}

func TestRecorderConcurrentUse(t *testing.T) {
	rec := NewRecorder()
	values := injection.New(injection.WithMissHandler(rec.Handler()))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			injection.Get(values, retriesKey)
		}()
	}
	wg.Wait()

	AssertCalls(t, rec, retriesKey, 20)
}

func TestExpectOnly(t *testing.T) {
	tb := &recordingTB{TB: t}
	values := injection.New(injection.WithMissHandler(ExpectOnly(tb, greetingKey)))

	if got := injection.Get(values, greetingKey); got != "hello" {
		t.Errorf("expected default greeting, got %q", got)
	}
	if len(tb.errors) != 0 {
		t.Fatalf("expected no errors for allowed key, got %v", tb.errors)
	}

	injection.Get(values, retriesKey)
	if len(tb.errors) != 1 {
		t.Fatalf("expected 1 error for unexpected key, got %v", tb.errors)
	}
}

func TestAssertGetReportsMismatch(t *testing.T) {
	tb := &recordingTB{TB: t}
	AssertGet(tb, injection.New(), retriesKey, 99)
	if len(tb.errors) != 1 {
		t.Errorf("expected mismatch to be reported, got %v", tb.errors)
	}
}
