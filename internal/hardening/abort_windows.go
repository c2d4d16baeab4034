// © 2026 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

//go:build hardened

package hardening

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// The fast-fail constants mirror FAST_FAIL_RANGE_CHECK_FAILURE and friends
// from winnt.h, which golang.org/x/sys/windows does not export.
const (
	fastFailRangeCheckFailure        = 8
	statusStackBufferOverrun         = 0xC0000409
	failFastGenerateExceptionAddress = 0x1
)

// exceptionRecord matches the layout of EXCEPTION_RECORD on 64-bit Windows.
type exceptionRecord struct {
	ExceptionCode        uint32
	ExceptionFlags       uint32
	ExceptionRecord      uintptr
	ExceptionAddress     uintptr
	NumberParameters     uint32
	ExceptionInformation [15]uintptr
}

var procRaiseFailFastException = windows.NewLazySystemDLL("kernel32.dll").NewProc("RaiseFailFastException")

// failedCheckAbort terminates the process through the fast-fail mechanism
// with the range-check failure code. It must not be inlined: every call
// site has to stay a distinct frame so crash reports identify which check
// failed. FAIL_FAST_GENERATE_EXCEPTION_ADDRESS makes the OS record the
// faulting address itself. The exit call below only runs if the fail-fast
// path is unavailable.
//
//go:noinline
func failedCheckAbort() {
	rec := exceptionRecord{
		ExceptionCode:    statusStackBufferOverrun,
		NumberParameters: 1,
	}
	rec.ExceptionInformation[0] = fastFailRangeCheckFailure
	_, _, _ = procRaiseFailFastException.Call(
		uintptr(unsafe.Pointer(&rec)),
		0,
		failFastGenerateExceptionAddress,
	)
	os.Exit(2)
}
