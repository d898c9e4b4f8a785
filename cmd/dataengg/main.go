package main

import (
	"fmt"
	"os"

	"github.com/0chandansharma/dataengg/internal/cli"
	"github.com/0chandansharma/dataengg/internal/config"
)

// version is stamped by the release build via -ldflags.
var version = "dev"

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	// cobra already printed the error
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
