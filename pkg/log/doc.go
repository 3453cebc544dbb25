// Package log provides the logging abstraction used by the dice packages.
//
// Library code never writes diagnostics to stdout, which is reserved for the
// roll report. Instead it logs through the Logger interface defined here.
// Three implementations are provided:
//
//	logger := log.NewZerologAdapterWithLogger(zl) // wrap a zerolog.Logger
//	logger := log.NewNoopLogger()                 // discard everything
//	logger := log.NewMemoryLogger()               // capture entries in tests
package log
