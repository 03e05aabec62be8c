package attack

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the optional per-network override file. When absent the
// defaults below apply, which reproduce the standard sink-attack setup.
const ConfigFile = "attack.yaml"

// Defaults for the injection parameters.
const (
	DefaultChannelFraction = 0.1
	DefaultCapacityMsat    = 10_000_000
	DefaultBaseScid        = 10_000_000
	DefaultTargetScid      = 9_999_999

	// DefaultAttackerPubkey is the fixed identity of the injected node.
	// It is outside the pubkey range the network generators produce;
	// a collision with an existing node aborts the run.
	DefaultAttackerPubkey = "035a43121d24b2ff465e85af9c07963701f259b5ce4ee636e3aeb503cc64142c11"
)

var validate = validator.New()

// Config holds the tunable injection parameters.
type Config struct {
	// ChannelFraction is the fraction of unique nodes the attacker
	// opens candidate channels to (floored).
	ChannelFraction float64 `yaml:"channel_fraction" validate:"gt=0,lte=1"`
	// CapacityMsat is the capacity of each candidate channel; the
	// target channel gets CapacityMsat times the candidate count.
	CapacityMsat int64 `yaml:"channel_capacity_msat" validate:"gte=1000000"`
	// BaseScid is the first short channel id assigned to candidate
	// channels, incrementing by one per channel.
	BaseScid uint64 `yaml:"base_scid" validate:"gt=0"`
	// TargetScid is the short channel id of the attacker-target channel.
	TargetScid uint64 `yaml:"target_scid" validate:"gt=0"`
	// AttackerPubkey is the injected node's identity.
	AttackerPubkey string `yaml:"attacker_pubkey" validate:"hexadecimal,len=66"`
}

// DefaultConfig returns the standard sink-attack parameters.
func DefaultConfig() Config {
	return Config{
		ChannelFraction: DefaultChannelFraction,
		CapacityMsat:    DefaultCapacityMsat,
		BaseScid:        DefaultBaseScid,
		TargetScid:      DefaultTargetScid,
		AttackerPubkey:  DefaultAttackerPubkey,
	}
}

// LoadConfig reads attack.yaml from the network directory when present,
// applying defaults for omitted keys, and validates the result.
func LoadConfig(dir string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, ConfigFile))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", ConfigFile, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", ConfigFile, err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}
	return cfg, nil
}
