package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/i3hub-official/fieldshield/cmd/app/commands"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate-keys",
			Usage: "Generate a complete key material environment block",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "kms-provider",
					Aliases: []string{"p"},
					Value:   "",
					Usage:   "KMS provider for wrapping the master key (gcpkms, awskms, azurekeyvault, hashivault, localsecrets)",
				},
				&cli.StringFlag{
					Name:    "kms-key-uri",
					Aliases: []string{"u"},
					Value:   "",
					Usage:   "URI of the KMS wrapping key (e.g., base64key://... for localsecrets)",
				},
				&cli.IntFlag{
					Name:    "iterations",
					Aliases: []string{"i"},
					Value:   210000,
					Usage:   "PBKDF2 iteration count for password hashing",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunGenerateKeys(
					ctx,
					commands.DefaultIO(),
					cmd.String("kms-provider"),
					cmd.String("kms-key-uri"),
					int(cmd.Int("iterations")),
				)
			},
		},
	}
}
