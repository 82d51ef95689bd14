// Command eventscout aggregates activity listings from multiple event
// providers behind one HTTP API and CLI.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
