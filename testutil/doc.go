// Package testutil provides test instrumentation for injection containers.
//
// A Recorder is a miss handler that remembers which keys were read without
// an override and can hand out canned values:
//
//	rec := testutil.NewRecorder().Return(ClockKey, fixedClock)
//	values := injection.New(injection.WithMissHandler(rec.Handler()))
//	svc := NewService(values)
//	svc.Run()
//	if rec.Calls(ClockKey) != 1 { ... }
//
// ExpectOnly fails the test as soon as a key outside the allowed set is
// read without an override:
//
//	values := injection.New(injection.WithMissHandler(testutil.ExpectOnly(t, ClockKey)))
//
// Recorder is safe for concurrent use.
package testutil
