package injection

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kbukum/microinjection/errors"
	"github.com/kbukum/microinjection/logger"
)

type bar struct {
	injection Values
}

func (b *bar) Injection() Values { return b.injection }

var (
	barA      = Inject(aKey)
	barANamed = InjectFunc(a)
)

func (b *bar) A() string      { return barA.Get(b) }
func (b *bar) ANamed() string { return barANamed.Get(b) }

func TestInjectionDefault(t *testing.T) {
	b := &bar{}
	if got := b.A(); got != "a" {
		t.Errorf("expected 'a', got %q", got)
	}
	if got := b.ANamed(); got != "a" {
		t.Errorf("expected 'a' via accessor, got %q", got)
	}
}

func TestInjectionStored(t *testing.T) {
	v := New()
	setA(&v, "A")
	b := &bar{injection: v}
	if got := b.A(); got != "A" {
		t.Errorf("expected 'A', got %q", got)
	}
	if got := b.ANamed(); got != "A" {
		t.Errorf("expected 'A' via accessor, got %q", got)
	}
}

func TestInjectionRereadsOwnerContainer(t *testing.T) {
	b := &bar{injection: New()}
	if got := b.A(); got != "a" {
		t.Fatalf("expected 'a', got %q", got)
	}

	Set(&b.injection, aKey, "mutated")
	if got := b.A(); got != "mutated" {
		t.Errorf("expected mutation to be visible, got %q", got)
	}

	swapped := New()
	Set(&swapped, aKey, "swapped")
	b.injection = swapped
	if got := b.A(); got != "swapped" {
		t.Errorf("expected swapped container to be visible, got %q", got)
	}
}

func TestInjectionRunsProviderOnEveryRead(t *testing.T) {
	counter := NewKey("counter", 0)
	n := 0
	v := New()
	SetFunc(&v, counter, func() int { n++; return n })

	b := &bar{injection: v}
	binding := Inject(counter)
	if first, second := binding.Get(b), binding.Get(b); first != 1 || second != 2 {
		t.Errorf("expected 1 then 2, got %d then %d", first, second)
	}
}

func TestInjectionUsesOwnerMissHandler(t *testing.T) {
	calls := 0
	b := &bar{injection: New(WithMissHandler(func(KeyDescriptor) any {
		calls++
		return "from handler"
	}))}
	if got := b.A(); got != "from handler" {
		t.Errorf("expected handler value, got %q", got)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestZeroInjectionPanics(t *testing.T) {
	var unbound Injection[string]
	if unbound.Bound() {
		t.Fatal("zero Injection should not be bound")
	}
	expectFault(t, errors.ErrCodeUnboundInjection, func() { unbound.Get(&bar{}) })
}

func TestInjectNilKeyPanics(t *testing.T) {
	expectFault(t, errors.ErrCodeInvalidKey, func() { Inject[string](nil) })
	expectFault(t, errors.ErrCodeInvalidKey, func() { InjectFunc[string](nil) })
}

func TestMutationsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger.Register("injection", logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, &buf, "test"))
	defer logger.Unregister("injection")

	v := New()
	Set(&v, aKey, "A")
	ResetToDefault(&v, aKey)

	out := buf.String()
	if !strings.Contains(out, "override stored") {
		t.Errorf("expected store log, got %q", out)
	}
	if !strings.Contains(out, "override removed") {
		t.Errorf("expected reset log, got %q", out)
	}
	if !strings.Contains(out, aKey.ID()) {
		t.Errorf("expected key id in log, got %q", out)
	}
}

func TestMutationsSilentAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	logger.Register("injection", logger.NewWithWriter(&logger.Config{Level: "info", Format: "json"}, &buf, "test"))
	defer logger.Unregister("injection")

	v := New(WithMissHandler(func(KeyDescriptor) any { return "handled" }))
	if got := Get(v, aKey); got != "handled" {
		t.Fatalf("expected handled value, got %q", got)
	}
	Set(&v, aKey, "A")
	ResetToDefault(&v, aKey)

	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got %q", buf.String())
	}
}
