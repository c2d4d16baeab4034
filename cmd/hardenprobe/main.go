// Command hardenprobe prints the hardening mode a build carries and can
// deliberately violate a check to show that mode's failure behavior.
//
//	go run ./cmd/hardenprobe
//	go run ./cmd/hardenprobe --trip deref
//	go run -tags hardened ./cmd/hardenprobe --trip index
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"gopkg.microglot.org/types.go/internal/hardening"
	"gopkg.microglot.org/types.go/optref"
)

type opts struct {
	Trip string
}

func initLogger() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %s", logLevel)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
}

func main() {
	initLogger()

	op := &opts{}
	flags := pflag.NewFlagSet("hardenprobe", pflag.PanicOnError)
	flags.StringVar(&op.Trip, "trip", "", "Violate a check on purpose: deref, ptr, or index.")
	_ = flags.Parse(os.Args[1:])

	fmt.Println(hardening.Mode)

	switch op.Trip {
	case "":
	case "deref":
		log.WithField("mode", hardening.Mode).Info("dereferencing an empty Ref")
		fmt.Println(optref.None[int]().Deref())
	case "ptr":
		log.WithField("mode", hardening.Mode).Info("taking Ptr of an empty Ref")
		fmt.Println(*optref.None[int]().Ptr())
	case "index":
		log.WithField("mode", hardening.Mode).Info("indexing one past the end")
		hardening.AssertInBounds(5, 5)
	default:
		fmt.Fprintln(os.Stderr, "unknown --trip: "+op.Trip)
		os.Exit(1)
	}
}
