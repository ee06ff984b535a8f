package injection

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"

	"github.com/kbukum/microinjection/errors"
	"github.com/kbukum/microinjection/logger"
)

// KeyDescriptor describes a key without its value type parameter. It is what
// a MissHandler receives.
type KeyDescriptor interface {
	// ID is the process-unique identity of the key.
	ID() string
	// Name is the human-readable name given at definition.
	Name() string
	// ValueType is the type of value stored under the key.
	ValueType() reflect.Type
	String() string
}

// Key is a typed slot in Values. Every Key returned by NewKey or
// NewComputedKey is distinct from every other, even when names and value
// types coincide. Keys are meant to be defined once, usually as package
// level variables.
type Key[V any] struct {
	id           string
	name         string
	valueType    reflect.Type
	defaultValue func() V
}

// NewKey defines a key whose default is a constant.
func NewKey[V any](name string, defaultValue V) *Key[V] {
	return newKey(name, func() V { return defaultValue })
}

// NewComputedKey defines a key whose default is produced by calling
// defaultValue on every read that finds no override. The result is never
// cached.
func NewComputedKey[V any](name string, defaultValue func() V) *Key[V] {
	if defaultValue == nil {
		panic(errors.InvalidKey(name, "nil default value provider"))
	}
	return newKey(name, defaultValue)
}

func newKey[V any](name string, defaultValue func() V) *Key[V] {
	vt := reflect.TypeFor[V]()
	if name == "" {
		name = vt.String()
	}
	return &Key[V]{
		id:           uuid.NewString(),
		name:         name,
		valueType:    vt,
		defaultValue: defaultValue,
	}
}

// ID returns the key's identity in Values. It is a random UUID assigned when
// the key is defined, so it is unique within a process but differs between
// runs; do not persist it or compare it across processes. Identity belongs to
// the definition, not to the name or value type.
func (k *Key[V]) ID() string { return k.id }

// Name returns the name given at definition, or the value type's name.
func (k *Key[V]) Name() string { return k.name }

// ValueType returns the type of value stored under the key.
func (k *Key[V]) ValueType() reflect.Type { return k.valueType }

func (k *Key[V]) String() string {
	return fmt.Sprintf("%s[%s]", k.name, k.valueType)
}

// DefaultValue returns the key's default value.
func (k *Key[V]) DefaultValue() V {
	return k.defaultValue()
}

// cast converts a raw stored or handler-supplied value to V. A value of any
// other type is a programmer error and panics.
func (k *Key[V]) cast(raw any) V {
	if raw == nil {
		var zero V
		return zero
	}
	v, ok := raw.(V)
	if !ok {
		actual := fmt.Sprintf("%T", raw)
		log().Error("value type mismatch", logger.Fields(
			logger.FieldKey, k.String(),
			logger.FieldKeyID, k.id,
			logger.FieldValueType, k.valueType.String(),
			"actual", actual,
		))
		panic(errors.TypeMismatch(k.String(), k.valueType.String(), actual))
	}
	return v
}
