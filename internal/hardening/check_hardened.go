// © 2026 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

//go:build hardened

package hardening

// Mode identifies the check behavior compiled into this build.
const Mode = "hardened"

func assert(cond bool, _ string) {
	if !cond {
		failedCheckAbort()
	}
}

func assertInBounds(index int, size int) {
	if index < 0 || index >= size {
		failedCheckAbort()
	}
}
