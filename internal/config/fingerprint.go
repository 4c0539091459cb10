package config

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/lbsim/internal/data"
	"github.com/udisondev/lbsim/internal/model"
)

// fingerprintSize is the digest length in bytes (16 hex characters).
const fingerprintSize = 8

// Fingerprint identifies a run: two runs with the same fingerprint produce
// the same samples for the same trial count and chunk size. It hashes the
// canonical YAML form of the scenario, the tables and the seed.
func Fingerprint(sc model.Scenario, t *data.Tables, seed uint64) (string, error) {
	h, err := blake2b.New(fingerprintSize, nil)
	if err != nil {
		return "", fmt.Errorf("creating hash: %w", err)
	}

	scenario, err := yaml.Marshal(FromScenario(sc, t.Constants.BuffLevelPercent))
	if err != nil {
		return "", fmt.Errorf("encoding scenario: %w", err)
	}
	// Raw percentages as well: FromScenario stores gauge levels only.
	buffs, err := yaml.Marshal(sc.Buffs)
	if err != nil {
		return "", fmt.Errorf("encoding buffs: %w", err)
	}
	tables, err := yaml.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("encoding tables: %w", err)
	}

	h.Write(scenario)
	h.Write(buffs)
	h.Write(tables)
	h.Write(binary.LittleEndian.AppendUint64(nil, seed))
	return hex.EncodeToString(h.Sum(nil)), nil
}
