// © 2026 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

//go:build hardened && !windows

package hardening

import (
	"os"
	"runtime"
)

// failedCheckAbort terminates the process with the platform trap
// instruction. It must not be inlined: every call site has to stay a
// distinct frame so crash reports identify which check failed. The trap is
// raised synchronously and is not recoverable; the exit call below only
// runs if a debugger resumes past the trap.
//
//go:noinline
func failedCheckAbort() {
	runtime.Breakpoint()
	os.Exit(2)
}
