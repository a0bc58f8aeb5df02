// Package sandbox maps user supplied path tokens onto absolute paths confined
// to a session root directory.
//
// Tokens are joined onto the current directory, or onto the root when they
// start with the root marker ("/" or "~"), then cleaned. Only after cleaning is
// the candidate compared with the root, component by component, so neither
// compound ".." sequences nor sibling directories sharing a name prefix
// (root-evil) can escape. Symbolic links are followed only while their real
// location stays under the real root; dangling links are rejected.
package sandbox
