package main

import (
	"os"

	"github.com/jamil1016/dailyreport/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
