package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "spinup",
		Usage: "Provision and tear down single cloud compute instances",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable verbose logging (info level)",
			},
		},
		Commands: []*cli.Command{
			createCommand(),
			rmCommand(),
		},
	}

	// Every failure path exits non-zero with a structured message.
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
