package injection

import (
	"maps"

	"github.com/rs/zerolog"

	"github.com/kbukum/microinjection/errors"
	"github.com/kbukum/microinjection/logger"
)

// MissHandler is consulted by Get when a key has no override. A non-nil
// result is used for that one read and is not stored; nil falls through to
// the key's default. A non-nil result must have the key's value type.
//
// It exists mainly for tests: to observe which keys are read, or to supply
// values without building a dedicated Values for every scenario.
type MissHandler func(key KeyDescriptor) any

// Option configures Values at construction.
type Option func(*Values)

// WithMissHandler sets the handler consulted for keys without an override.
func WithMissHandler(h MissHandler) Option {
	return func(v *Values) { v.onMiss = h }
}

type provider func() any

// Values maps keys to overrides. The zero value is an empty container with
// no miss handler.
//
// Values has value semantics: mutations replace the internal map with a
// modified clone, so copies made by assignment never observe each other's
// later changes.
type Values struct {
	onMiss MissHandler
	dict   map[string]provider
}

// New creates an empty Values.
func New(opts ...Option) Values {
	var v Values
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

// Get returns the value for key: the stored override if there is one,
// otherwise the miss handler's non-nil result, otherwise the key's default.
// The miss handler is called at most once per Get and never when an override
// exists.
func Get[V any](v Values, key *Key[V]) V {
	if p, ok := v.dict[key.id]; ok {
		return key.cast(p())
	}
	if v.onMiss != nil {
		if raw := v.onMiss(key); raw != nil {
			debug("unstored key resolved by miss handler", key)
			return key.cast(raw)
		}
	}
	return key.DefaultValue()
}

// Set stores a constant override for key, replacing any earlier override.
func Set[V any](v *Values, key *Key[V], value V) {
	v.store(key, func() any { return value })
}

// SetFunc stores fn as the override for key. fn is called on every Get, so
// successive reads may return different values.
func SetFunc[V any](v *Values, key *Key[V], fn func() V) {
	if fn == nil {
		panic(errors.InvalidKey(key.String(), "nil override provider"))
	}
	v.store(key, func() any { return fn() })
}

// ResetToDefault removes any override for key. Later reads behave as if the
// key had never been set.
func ResetToDefault[V any](v *Values, key *Key[V]) {
	if _, ok := v.dict[key.id]; !ok {
		return
	}
	next := maps.Clone(v.dict)
	delete(next, key.id)
	v.dict = next
	debug("override removed", key)
}

// IsSet reports whether an override is stored for key.
func IsSet(v Values, key KeyDescriptor) bool {
	_, ok := v.dict[key.ID()]
	return ok
}

// HasMissHandler reports whether v was built with a miss handler.
func (v Values) HasMissHandler() bool {
	return v.onMiss != nil
}

func (v *Values) store(key KeyDescriptor, p provider) {
	next := maps.Clone(v.dict)
	if next == nil {
		next = make(map[string]provider, 1)
	}
	next[key.ID()] = p
	v.dict = next
	debug("override stored", key)
}

func log() *logger.Logger {
	return logger.Get("injection")
}

// debug logs msg with the key's fields when debug logging is enabled.
func debug(msg string, key KeyDescriptor) {
	l := log()
	if !l.Enabled(zerolog.DebugLevel) {
		return
	}
	l.Debug(msg, keyFields(key))
}

func keyFields(key KeyDescriptor) map[string]interface{} {
	return logger.Fields(
		logger.FieldKey, key.Name(),
		logger.FieldKeyID, key.ID(),
		logger.FieldValueType, key.ValueType().String(),
	)
}
