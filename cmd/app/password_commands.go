package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/i3hub-official/fieldshield/cmd/app/commands"
)

func getPasswordCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "hash-password",
			Usage: "Hash a password into its versioned storage record",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "password",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Password to hash",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunHashPassword(ctx, commands.DefaultIO(), cmd.String("password"))
			},
		},
		{
			Name:  "check-password",
			Usage: "Check a candidate password against the strength policy",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "password",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Password to check",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCheckPassword(ctx, commands.DefaultIO(), cmd.String("password"))
			},
		},
	}
}
