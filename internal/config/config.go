package config

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Environment variable names for the batch signer
const (
	EnvPrivateKey = "BATCH_SIGNER_PRIVATE_KEY"
	EnvHashes     = "BATCH_SIGNER_HASHES"
	EnvHashesFile = "BATCH_SIGNER_HASHES_FILE"
	EnvStrict     = "BATCH_SIGNER_STRICT"
	EnvDebug      = "BATCH_SIGNER_DEBUG"
)

const privateKeyHexLength = 64

// BatchConfig describes where the ordered transaction hashes come from.
type BatchConfig struct {
	Hashes     []string `json:"hashes" yaml:"hashes"`
	HashesFile string   `json:"hashesFile" yaml:"hashesFile"`
	Strict     bool     `json:"strict" yaml:"strict"`
}

func (bc *BatchConfig) validate(path *field.Path) field.ErrorList {
	var allErrors field.ErrorList
	if len(bc.Hashes) > 0 && bc.HashesFile != "" {
		allErrors = append(allErrors, field.Forbidden(path.Child("hashesFile"), "hashesFile cannot be combined with hashes"))
	}
	return allErrors
}

// LoadHashes returns the configured hashes, reading HashesFile when set. An
// empty result is valid and denotes the empty batch.
func (bc *BatchConfig) LoadHashes() ([]string, error) {
	if bc.HashesFile == "" {
		return bc.Hashes, nil
	}
	data, err := os.ReadFile(bc.HashesFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read hashes file %s", bc.HashesFile)
	}
	hashes, err := ParseHashList(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse hashes file %s", bc.HashesFile)
	}
	return hashes, nil
}

// ParseHashList accepts either a JSON array of strings or one hash per line.
// Blank lines and lines starting with '#' are skipped in the line format.
func ParseHashList(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("[")) {
		var hashes []string
		if err := json.Unmarshal(trimmed, &hashes); err != nil {
			return nil, err
		}
		return hashes, nil
	}

	hashes := []string{}
	scanner := bufio.NewScanner(bytes.NewReader(trimmed))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		hashes = append(hashes, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return hashes, nil
}

type SignConfig struct {
	BatchConfig
	PrivateKey string `json:"-" yaml:"-"`
	JSON       bool   `json:"json" yaml:"json"`
	Debug      bool   `json:"debug" yaml:"debug"`
}

func (sc *SignConfig) Validate() error {
	allErrors := sc.BatchConfig.validate(field.NewPath("batch"))

	keyPath := field.NewPath("privateKey")
	key := strings.TrimPrefix(strings.TrimPrefix(sc.PrivateKey, "0x"), "0X")
	switch {
	case sc.PrivateKey == "":
		allErrors = append(allErrors, field.Required(keyPath, "privateKey is required"))
	case len(key) != privateKeyHexLength:
		// never echo key material back
		allErrors = append(allErrors, field.Invalid(keyPath, "<redacted>", "privateKey must be 32 bytes (64 hex chars)"))
	}

	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

type RecoverConfig struct {
	BatchConfig
	Signature string `json:"signature" yaml:"signature"`
	Debug     bool   `json:"debug" yaml:"debug"`
}

func (rc *RecoverConfig) Validate() error {
	allErrors := rc.BatchConfig.validate(field.NewPath("batch"))
	if rc.Signature == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("signature"), "signature is required"))
	}
	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}
