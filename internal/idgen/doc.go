// Package idgen generates session and message identifiers. Callers treat the
// identifiers as opaque strings; tests may replace NewFunc.
package idgen
