package main

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/novakdc/spinup/internal/connector"
	"github.com/novakdc/spinup/internal/connector/aws"
	"github.com/novakdc/spinup/internal/connector/digitalocean"
	"github.com/novakdc/spinup/internal/connector/hetzner"
	"github.com/novakdc/spinup/internal/connector/scaleway"
	"github.com/novakdc/spinup/internal/decommissioner"
	"github.com/novakdc/spinup/internal/logger"
	"github.com/novakdc/spinup/internal/provisioner"
)

// connectors is the dispatch table from provider token to connector
// constructor. Adding a provider means implementing the Connector
// interface and adding one entry here.
var connectors = map[string]func(ctx context.Context, log *slog.Logger) (connector.Connector, error){
	"digitalocean": func(_ context.Context, log *slog.Logger) (connector.Connector, error) {
		return digitalocean.NewConnector(log)
	},
	"aws": func(ctx context.Context, log *slog.Logger) (connector.Connector, error) {
		return aws.NewConnector(ctx, log)
	},
	"hetzner": func(_ context.Context, log *slog.Logger) (connector.Connector, error) {
		return hetzner.NewConnector(log)
	},
	"scaleway": func(_ context.Context, log *slog.Logger) (connector.Connector, error) {
		return scaleway.NewConnector(log)
	},
}

// selectConnector resolves a provider token against the dispatch table.
func selectConnector(ctx context.Context, log *slog.Logger, provider string) (connector.Connector, error) {
	build, ok := connectors[provider]
	if !ok {
		return nil, fmt.Errorf("unknown provider %q (supported: %s)", provider, supportedProviders())
	}
	return build(ctx, log)
}

func supportedProviders() string {
	names := make([]string, 0, len(connectors))
	for name := range connectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func createCommand() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create an instance and wait until it has a public IPv4 address",
		ArgsUsage: "<provider>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Usage:   "Instance name",
				EnvVars: []string{"INSTANCE_NAME"},
			},
			&cli.StringFlag{
				Name:    "region",
				Usage:   "Provider region or zone",
				EnvVars: []string{"INSTANCE_REGION"},
			},
			&cli.StringFlag{
				Name:    "image",
				Usage:   "OS image slug or id",
				EnvVars: []string{"INSTANCE_IMAGE"},
			},
			&cli.StringFlag{
				Name:    "ssh-key",
				Usage:   "SSH key name registered with the provider",
				EnvVars: []string{"SSH_KEY_NAME"},
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("usage: spinup create <provider>")
			}
			log := logger.New(c.Bool("verbose"))

			conn, err := selectConnector(c.Context, log, c.Args().Get(0))
			if err != nil {
				return err
			}

			req := connector.CreateRequest{
				Name:      c.String("name"),
				Region:    c.String("region"),
				Image:     c.String("image"),
				SSHKeyRef: c.String("ssh-key"),
			}

			inst, err := provisioner.New(log, conn).Provision(c.Context, req)
			if err != nil {
				return err
			}

			fmt.Printf("created %s instance %s with address %s\n", conn.Name(), inst.ID, inst.PublicIPv4)
			return nil
		},
	}
}

func rmCommand() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "Delete an instance by id",
		ArgsUsage: "<provider> <id>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return fmt.Errorf("usage: spinup rm <provider> <id>")
			}
			log := logger.New(c.Bool("verbose"))

			conn, err := selectConnector(c.Context, log, c.Args().Get(0))
			if err != nil {
				return err
			}

			id := c.Args().Get(1)
			if err := decommissioner.New(log, conn).Decommission(c.Context, id); err != nil {
				return err
			}

			fmt.Printf("deleted %s instance %s\n", conn.Name(), id)
			return nil
		},
	}
}
