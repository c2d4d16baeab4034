// © 2026 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

//go:build trusting && !hardened

package hardening

// Mode identifies the check behavior compiled into this build.
const Mode = "trusting"

func assert(bool, string) {}

func assertInBounds(int, int) {}
