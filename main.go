package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/matematik7/octofit-go/activities"
	"github.com/matematik7/octofit-go/api"
	"github.com/matematik7/octofit-go/app"
	"github.com/matematik7/octofit-go/config"
	"github.com/matematik7/octofit-go/leaderboard"
	"github.com/matematik7/octofit-go/teams"
	"github.com/matematik7/octofit-go/users"
	"github.com/matematik7/octofit-go/workouts"
)

func main() {
	cliApp := &cli.App{
		Name:  "octofit",
		Usage: "OctoFit Tracker web views",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "optional yaml config file",
				EnvVars: []string{"OCTOFIT_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			fetchCommand(),
		},
		DefaultCommand: "serve",
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

func newApp(c *cli.Context) (*app.App, error) {
	cfg, err := config.Load(config.New(), c.String("config"))
	if err != nil {
		return nil, err
	}

	application, err := app.New(cfg)
	if err != nil {
		return nil, err
	}

	application.Controllers = []app.Controller{
		activities.New(),
		leaderboard.New(),
		teams.New(),
		users.New(),
		workouts.New(),
	}

	if err := application.Configure(); err != nil {
		return nil, err
	}

	return application, nil
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the resource views",
		Action: func(c *cli.Context) error {
			application, err := newApp(c)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			return application.Serve(ctx)
		},
	}
}

func fetchCommand() *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "read one resource list and print it normalized",
		ArgsUsage: "<resource>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.Errorf("expected one resource, one of %v", api.Resources)
			}
			res, err := api.ParseResource(c.Args().First())
			if err != nil {
				return err
			}

			application, err := newApp(c)
			if err != nil {
				return err
			}

			records, err := application.Client.List(c.Context, res)
			if err != nil {
				return errors.Wrapf(err, "could not fetch %s", res)
			}

			out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(records, "", "  ")
			if err != nil {
				return errors.Wrap(err, "could not encode records")
			}
			fmt.Fprintln(c.App.Writer, string(out))
			return nil
		},
	}
}
