// main is the entry point for the archdrift CLI.
package main

import (
	"fmt"
	"os"

	"github.com/archdrift/archdrift/cmd"
	"github.com/archdrift/archdrift/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
	if err := cmd.StopProfiling(); err != nil {
		contract.LogWarn("Failed to stop profiling", err)
	}
}
