package main

import (
	"os"

	"github.com/jaewonkim/ivsched/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
