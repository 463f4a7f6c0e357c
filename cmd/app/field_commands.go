package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/i3hub-official/fieldshield/cmd/app/commands"
)

func tierFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "tier",
		Aliases:  []string{"t"},
		Required: true,
		Usage:    "Protection tier (sealed, email, phone, nin, jamb, regno, basic, password, onewaycode)",
	}
}

func getFieldCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "protect",
			Usage: "Protect a plaintext value under a tier",
			Flags: []cli.Flag{
				tierFlag(),
				&cli.StringFlag{
					Name:     "value",
					Aliases:  []string{"v"},
					Required: true,
					Usage:    "Plaintext value to protect",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunProtect(ctx, commands.DefaultIO(), cmd.String("tier"), cmd.String("value"))
			},
		},
		{
			Name:  "unprotect",
			Usage: "Recover the canonical plaintext from a protected value",
			Flags: []cli.Flag{
				tierFlag(),
				&cli.StringFlag{
					Name:     "ciphertext",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Stored ciphertext string",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunUnprotect(ctx, commands.DefaultIO(), cmd.String("tier"), cmd.String("ciphertext"))
			},
		},
		{
			Name:  "verify",
			Usage: "Check a plaintext value against a protected value",
			Flags: []cli.Flag{
				tierFlag(),
				&cli.StringFlag{
					Name:     "value",
					Aliases:  []string{"v"},
					Required: true,
					Usage:    "Plaintext value to check",
				},
				&cli.StringFlag{
					Name:     "ciphertext",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Stored ciphertext string",
				},
				&cli.StringFlag{
					Name:  "search-hash",
					Value: "",
					Usage: "Stored search digest, when the tier is searchable",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunVerify(
					ctx,
					commands.DefaultIO(),
					cmd.String("tier"),
					cmd.String("value"),
					cmd.String("ciphertext"),
					cmd.String("search-hash"),
				)
			},
		},
	}
}
