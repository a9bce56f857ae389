// Command fridgectl replays fridge scenarios offline and feeds them to a
// running fridgekeeper through the event bus.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
