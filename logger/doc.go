// Package logger provides structured logging for microinjection using
// zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("injection")
//	log.Debug("override stored", logger.Fields("key", "port[int]"))
package logger
