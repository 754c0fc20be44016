// Command card-preview renders item cards in the terminal, for checking
// card layouts without a Discord client.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
