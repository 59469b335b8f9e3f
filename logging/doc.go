// Package logging is the structured logging contract used across molfrag.
//
// Library packages accept a Logger and default to NewNop; only this package
// imports zap. The CLI builds a zap-backed Logger from Config:
//
//	level   debug | info | warn | error   (default info)
//	format  json | console                (default console)
//	outputs paths or stdout/stderr        (default stderr)
//
// Logs go to stderr by default so stdout stays reserved for results.
package logging
