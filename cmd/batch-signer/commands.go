package main

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/base-org/batch-signer/internal/config"
	"github.com/base-org/batch-signer/internal/logger"
	"github.com/base-org/batch-signer/signer"
)

// Exit codes returned by the CLI.
const (
	exitMalformedInput = 1
	exitInvalidKey     = 2
	exitFailure        = 3
)

type signOutput struct {
	Count     int              `json:"count"`
	Digest    common.Hash      `json:"digest"`
	Signature signer.Signature `json:"signature"`
	Signer    common.Address   `json:"signer"`
}

func batchConfigFromContext(c *cli.Context) config.BatchConfig {
	return config.BatchConfig{
		Hashes:     append(c.StringSlice("hash"), c.Args().Slice()...),
		HashesFile: c.String("hashes-file"),
		Strict:     c.Bool("strict"),
	}
}

func loadBatch(bc *config.BatchConfig, l *zap.Logger) (signer.Batch, error) {
	hashes, err := bc.LoadHashes()
	if err != nil {
		return nil, err
	}
	batch, err := signer.ParseBatch(hashes, bc.Strict)
	if err != nil {
		return nil, err
	}
	for i, d := range batch.Digests() {
		l.Sugar().Debugw("transaction hash digest", "index", i, "digest", d.Hex())
	}
	return batch, nil
}

func signCommand(c *cli.Context) error {
	cfg := &config.SignConfig{
		BatchConfig: batchConfigFromContext(c),
		PrivateKey:  c.String("private-key"),
		JSON:        c.Bool("json"),
		Debug:       c.Bool("debug"),
	}
	if err := cfg.Validate(); err != nil {
		return exitError(errors.Wrap(err, "invalid configuration"))
	}

	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	batch, err := loadBatch(&cfg.BatchConfig, l)
	if err != nil {
		return exitError(err)
	}

	s, err := signer.NewPrivateKeySigner(cfg.PrivateKey)
	cfg.PrivateKey = ""
	if err != nil {
		return exitError(err)
	}
	defer s.Zero()

	digest := batch.Hash()
	sig, err := batch.Sign(s)
	if err != nil {
		return exitError(errors.Wrap(err, "failed to sign transaction batch"))
	}

	l.Info("Signed transaction batch",
		zap.Int("count", len(batch)),
		zap.String("digest", digest.Hex()),
		zap.String("signer", s.Address().Hex()),
	)

	if !cfg.JSON {
		_, err = fmt.Fprintln(c.App.Writer, sig.Hex())
		return err
	}
	out, err := json.MarshalIndent(signOutput{
		Count:     len(batch),
		Digest:    digest,
		Signature: sig,
		Signer:    s.Address(),
	}, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, string(out))
	return err
}

func recoverCommand(c *cli.Context) error {
	cfg := &config.RecoverConfig{
		BatchConfig: batchConfigFromContext(c),
		Signature:   c.String("signature"),
		Debug:       c.Bool("debug"),
	}
	if err := cfg.Validate(); err != nil {
		return exitError(errors.Wrap(err, "invalid configuration"))
	}

	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	sig, err := signer.ParseSignature(cfg.Signature)
	if err != nil {
		return cli.Exit(err.Error(), exitMalformedInput)
	}
	batch, err := loadBatch(&cfg.BatchConfig, l)
	if err != nil {
		return exitError(err)
	}

	digest := batch.Hash()
	addr, err := sig.RecoverAddress(digest)
	if err != nil {
		return exitError(err)
	}
	l.Debug("Recovered batch signer",
		zap.String("digest", digest.Hex()),
		zap.Uint8("recoveryId", sig.V()),
	)

	_, err = fmt.Fprintln(c.App.Writer, addr.Hex())
	return err
}

func digestCommand(c *cli.Context) error {
	bc := batchConfigFromContext(c)
	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: c.Bool("debug")})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	batch, err := loadBatch(&bc, l)
	if err != nil {
		return exitError(err)
	}
	_, err = fmt.Fprintln(c.App.Writer, batch.Hash().Hex())
	return err
}

// exitError classifies err into a CLI exit code.
func exitError(err error) error {
	var (
		hashErr *signer.MalformedHashError
		keyErr  *signer.InvalidPrivateKeyError
	)
	switch {
	case errors.As(err, &hashErr):
		return cli.Exit(err.Error(), exitMalformedInput)
	case errors.As(err, &keyErr):
		return cli.Exit(err.Error(), exitInvalidKey)
	default:
		return cli.Exit(err.Error(), exitFailure)
	}
}
