package main

import (
	"os"

	"github.com/jilatanaka/jilata/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
