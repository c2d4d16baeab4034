// © 2026 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package hardening implements the emptiness and bounds checks guarding
// dereference operations in this module. The behavior of a failed check is
// selected at build time:
//
//   - default: a conventional assertion. The violation is reported through
//     logrus with its diagnostic fields and then escalated as a panic.
//   - -tags hardened: the process is terminated immediately through a
//     non-returning, non-inlined abort so that every failure produces a
//     distinguishable address in the crash report. No unwinding, no
//     recovery.
//   - -tags trusting: checks compile to empty bodies. A violated
//     precondition falls through to whatever the unchecked operation does,
//     which for pointer dereferences is the runtime's own nil dereference
//     panic at the access site.
//
// When both tags are set, hardened wins.
package hardening

// Assert validates the boolean form of a precondition. msg is used as the
// diagnostic when the check is violated in a reporting mode.
func Assert(cond bool, msg string) {
	assert(cond, msg)
}

// AssertInBounds validates that index addresses one of size elements.
func AssertInBounds(index int, size int) {
	assertInBounds(index, size)
}
