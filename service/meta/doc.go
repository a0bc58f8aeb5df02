// Package meta loads YAML documents through afs, expanding ${env.NAME}
// references before decoding.
package meta
