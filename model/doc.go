// Package model holds the data shared between the interpreter layers:
// commands, handler responses with their wire codec, and executed command
// records.
package model
