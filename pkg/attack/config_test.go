package attack

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	dir := t.TempDir()
	content := `
channel_fraction: 0.25
channel_capacity_msat: 50000000
base_scid: 20000000
`
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ChannelFraction != 0.25 {
		t.Errorf("ChannelFraction = %v", cfg.ChannelFraction)
	}
	if cfg.CapacityMsat != 50_000_000 {
		t.Errorf("CapacityMsat = %d", cfg.CapacityMsat)
	}
	if cfg.BaseScid != 20_000_000 {
		t.Errorf("BaseScid = %d", cfg.BaseScid)
	}
	// Omitted keys keep their defaults.
	if cfg.TargetScid != DefaultTargetScid {
		t.Errorf("TargetScid = %d, want default", cfg.TargetScid)
	}
	if cfg.AttackerPubkey != DefaultAttackerPubkey {
		t.Errorf("AttackerPubkey = %q, want default", cfg.AttackerPubkey)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"fraction above one", "channel_fraction: 1.5\n"},
		{"zero capacity", "channel_capacity_msat: 0\n"},
		{"short pubkey", "attacker_pubkey: \"02abcd\"\n"},
		{"non-hex pubkey", "attacker_pubkey: \"zz5a43121d24b2ff465e85af9c07963701f259b5ce4ee636e3aeb503cc64142c11\"\n"},
		{"malformed yaml", "channel_fraction: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(dir); err == nil {
				t.Error("expected error")
			}
		})
	}
}
