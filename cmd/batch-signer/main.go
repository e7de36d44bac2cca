package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/base-org/batch-signer/internal/config"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func batchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "hash",
			Usage:   "Transaction hash (0x-prefixed hex). Repeat in batch order; positional arguments are appended",
			EnvVars: []string{config.EnvHashes},
		},
		&cli.StringFlag{
			Name:    "hashes-file",
			Usage:   "File with transaction hashes, either a JSON array or one per line",
			EnvVars: []string{config.EnvHashesFile},
		},
		&cli.BoolFlag{
			Name:    "strict",
			Usage:   "Require every transaction hash to be exactly 32 bytes",
			EnvVars: []string{config.EnvStrict},
		},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "batch-signer",
		Usage: "Sign an ordered batch of transaction hashes with a single recoverable secp256k1 signature",
		Description: `The signed digest is keccak256(keccak256(h0) || keccak256(h1) || ...).

The signature is printed as 0x-prefixed hex: R (32 bytes) || S (32 bytes) || recovery id (1 byte).`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "Enable debug logging",
				EnvVars: []string{config.EnvDebug},
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "sign",
				Usage:     "Sign a batch of transaction hashes",
				ArgsUsage: "[hash...]",
				Flags: append(batchFlags(),
					&cli.StringFlag{
						Name:    "private-key",
						Usage:   "secp256k1 private key (hex, 0x prefix optional)",
						EnvVars: []string{config.EnvPrivateKey},
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print digest, signature and signer address as JSON",
					},
				),
				Action: signCommand,
			},
			{
				Name:      "recover",
				Usage:     "Recover the signer address of a batch signature",
				ArgsUsage: "[hash...]",
				Flags: append(batchFlags(),
					&cli.StringFlag{
						Name:     "signature",
						Usage:    "65 byte signature (hex)",
						Required: true,
					},
				),
				Action: recoverCommand,
			},
			{
				Name:      "digest",
				Usage:     "Print the combined digest of a batch without signing",
				ArgsUsage: "[hash...]",
				Flags:     batchFlags(),
				Action:    digestCommand,
			},
		},
	}
}
