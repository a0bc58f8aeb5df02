// Package executor runs one input line through the interpreter pipeline:
// tokenizing, verb lookup, policy checks, bounded handler execution and wire
// encoding. It serializes commands per session and never lets a handler failure
// escape as an error.
package executor
