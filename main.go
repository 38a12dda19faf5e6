package main

import (
	"os"

	"github.com/teamforge/teamforge-ctl/cmd"
	"github.com/teamforge/teamforge-ctl/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
