// Package errors provides the structured error type shared by microinjection
// packages. Registry faults (type mismatches, invalid keys, unbound
// injections) are raised as panics carrying an *AppError; configuration and
// validation failures are returned as ordinary errors.
package errors
