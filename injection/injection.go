package injection

import (
	"reflect"

	"github.com/kbukum/microinjection/errors"
)

// Injectable is implemented by consumers that own a Values. Injection
// bindings read through it.
type Injectable interface {
	Injection() Values
}

// Injection is a read-only binding of one value out of a consumer's Values.
// It holds no value of its own: every Get re-resolves through the owner's
// current container. It has no write method.
type Injection[V any] struct {
	resolve func(Values) V
}

// Inject binds key.
func Inject[V any](key *Key[V]) Injection[V] {
	if key == nil {
		panic(errors.InvalidKey(reflect.TypeFor[V]().String(), "nil key"))
	}
	return Injection[V]{resolve: func(v Values) V { return Get(v, key) }}
}

// InjectFunc binds an accessor over Values, typically a named accessor
// wrapping Get for one key.
//
//	func Timeout(v injection.Values) time.Duration { return injection.Get(v, TimeoutKey) }
//
//	var timeout = injection.InjectFunc(Timeout)
func InjectFunc[V any](accessor func(Values) V) Injection[V] {
	if accessor == nil {
		panic(errors.InvalidKey(reflect.TypeFor[V]().String(), "nil accessor"))
	}
	return Injection[V]{resolve: accessor}
}

// Get resolves the bound value through owner's container.
func (i Injection[V]) Get(owner Injectable) V {
	if i.resolve == nil {
		panic(errors.UnboundInjection(reflect.TypeFor[V]().String()))
	}
	return i.resolve(owner.Injection())
}

// Bound reports whether i was created by Inject or InjectFunc.
func (i Injection[V]) Bound() bool {
	return i.resolve != nil
}
