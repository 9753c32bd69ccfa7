package main

import (
	"fmt"
	"os"

	"member-history-backend/cmd/historyctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
