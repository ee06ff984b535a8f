package config

import (
	"reflect"
	"strings"

	"github.com/spf13/viper"

	"github.com/kbukum/microinjection/errors"
	"github.com/kbukum/microinjection/injection"
	"github.com/kbukum/microinjection/logger"
)

// Source reads values for injection keys from a viper configuration tree.
// A key is addressed by its name below the prefix, so with prefix
// "injection" the key "http.timeout" is read from injection.http.timeout.
type Source struct {
	v      *viper.Viper
	prefix string
}

// NewSource creates a Source over v. An empty prefix addresses keys from the
// root of the tree.
func NewSource(v *viper.Viper, prefix string) *Source {
	return &Source{v: v, prefix: strings.Trim(prefix, ".")}
}

// Path returns the configuration path for key.
func (s *Source) Path(key injection.KeyDescriptor) string {
	if s.prefix == "" {
		return key.Name()
	}
	return s.prefix + "." + key.Name()
}

// Has reports whether the configuration holds an entry for key.
func (s *Source) Has(key injection.KeyDescriptor) bool {
	return s.v.IsSet(s.Path(key))
}

// Lookup decodes the entry for key into the key's value type. It returns
// false when the entry is absent and an *errors.AppError when it cannot be
// decoded.
func (s *Source) Lookup(key injection.KeyDescriptor) (any, bool, error) {
	path := s.Path(key)
	if !s.v.IsSet(path) {
		return nil, false, nil
	}
	target := reflect.New(key.ValueType())
	if err := s.v.UnmarshalKey(path, target.Interface()); err != nil {
		return nil, false, errors.ConfigDecode(path, err).WithDetail("key_id", key.ID())
	}
	return target.Elem().Interface(), true, nil
}

// MissHandler returns a miss handler that resolves keys without an override
// from configuration. Absent entries and entries that fail to decode yield
// nil, so the key default applies; decode failures are logged.
func (s *Source) MissHandler() injection.MissHandler {
	return func(key injection.KeyDescriptor) any {
		return s.resolve(key)
	}
}

func (s *Source) resolve(key injection.KeyDescriptor) any {
	value, ok, err := s.Lookup(key)
	if err != nil {
		logger.Get("config").Warn("config value for key not decodable", logger.MergeWithError(
			logger.Fields(logger.FieldKey, key.Name(), logger.FieldSource, s.Path(key)), err))
		return nil
	}
	if !ok {
		return nil
	}
	return value
}

// Override stores a provider for key that reads src on every Get, so later
// configuration changes (for example through viper.WatchConfig) are picked
// up. Absent or undecodable entries fall back to the key default.
func Override[V any](values *injection.Values, src *Source, key *injection.Key[V]) {
	injection.SetFunc(values, key, func() V {
		if raw := src.resolve(key); raw != nil {
			if v, ok := raw.(V); ok {
				return v
			}
		}
		return key.DefaultValue()
	})
}
