// Command shipsim loads a shipping network definition and drives it
// through the discrete-event simulation, or runs a one-shot path query
// against it.
package main

import (
	"github.com/jwmdev/shipsim/internal/logging"
)

var log = logging.New("shipsim")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
