// Package main provides the patternlab CLI, which runs and inspects the
// built-in catalog of design pattern and SOLID principle examples.
package main

import (
	"errors"
	"fmt"
	"os"

	"patternlab/cmd/patternlab/internal/cli"
	"patternlab/internal/examples"
)

func main() {
	app := cli.NewApp(examples.NewCatalog, cli.WithOutput(os.Stdout, os.Stderr))

	if err := app.Execute(os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
