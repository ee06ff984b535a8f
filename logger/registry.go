package logger

import (
	"sync"
)

// registry is the global named-logger registry.
var registry = &loggerRegistry{
	loggers: make(map[string]*Logger),
	derived: make(map[string]*Logger),
}

type loggerRegistry struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
	// derived caches component loggers built from base for unregistered names.
	derived map[string]*Logger
	base    *Logger
}

// Register stores a named logger in the registry.
func Register(name string, l *Logger) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.loggers[name] = l
}

// Unregister removes a named logger so Get falls back to the global logger.
func Unregister(name string) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	delete(registry.loggers, name)
}

// Get retrieves a named logger. If the name is not registered it returns the
// global logger tagged with the requested component name. Tagged loggers are
// built once per global logger.
func Get(name string) *Logger {
	global := GetGlobalLogger()

	registry.mu.RLock()
	l, ok := registry.loggers[name]
	if !ok && registry.base == global {
		l, ok = registry.derived[name]
	}
	registry.mu.RUnlock()
	if ok {
		return l
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if registry.base != global {
		registry.base = global
		registry.derived = make(map[string]*Logger)
	}
	if l, ok := registry.derived[name]; ok {
		return l
	}
	l = global.WithComponent(name)
	registry.derived[name] = l
	return l
}
