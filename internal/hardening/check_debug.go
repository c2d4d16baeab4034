// © 2026 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

//go:build !hardened && !trusting

package hardening

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Mode identifies the check behavior compiled into this build.
const Mode = "debug"

func assert(cond bool, msg string) {
	if !cond {
		log.WithField("check", msg).Error("hardening assertion failed")
		panic(msg)
	}
}

func assertInBounds(index int, size int) {
	if index < 0 || index >= size {
		log.WithFields(log.Fields{
			"index": index,
			"size":  size,
		}).Error("hardening bounds check failed")
		panic(fmt.Sprintf("index %d out of range for size %d", index, size))
	}
}
