package main

import (
	"errors"
	"log"
	"os"

	"github.com/brandonbloom/rn/internal/cli"
)

func main() {
	log.SetFlags(0)
	if err := cli.Execute(); err != nil {
		if errors.Is(err, cli.ErrNoSelection) {
			os.Exit(1)
		}
		log.Fatal(err)
	}
}
