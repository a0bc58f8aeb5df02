// Package progress keeps aggregated command counters (executed, failed,
// signals, timeouts) for a terminal session. Counters are updated through
// Delta values so that the executor never needs to know which tracker it is
// feeding.
package progress
