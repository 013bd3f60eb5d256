package main

import (
	"errors"
	"log"
	"os"

	"github.com/integeruser/closedmdcop-miner/internal/cli"
)

func main() {
	if err := cli.Main(os.Args); err != nil {
		var exitErr *cli.ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		log.Fatal(err)
	}
}
