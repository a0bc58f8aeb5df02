// Package policy provides optional declarative rules restricting which verbs a
// session may execute. A policy can be configured on the service or attached to
// a single call through the context.
package policy
