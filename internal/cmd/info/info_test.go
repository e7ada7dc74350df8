package info

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}

	if cfg.Address != "localhost:31416" {
		t.Fatalf("unexpected default address %q", cfg.Address)
	}
	if cfg.DialTimeout != 10*time.Second {
		t.Fatalf("unexpected default timeout %v", cfg.DialTimeout)
	}
	if cfg.Audit {
		t.Fatal("auditing should default off")
	}
}

func TestParseConfigEnvOverride(t *testing.T) {
	t.Setenv("PTSL_ADDRESS", "studio-mac:31416")
	t.Setenv("PTSL_TOKEN_FILE", "/etc/ptsl/token")
	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}

	if cfg.Address != "studio-mac:31416" {
		t.Fatalf("env address not applied: %q", cfg.Address)
	}
	if cfg.TokenFile != "/etc/ptsl/token" {
		t.Fatalf("env token file not applied: %q", cfg.TokenFile)
	}
}

func TestParseConfigFlagBeatsEnv(t *testing.T) {
	t.Setenv("PTSL_ADDRESS", "env-host:31416")
	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	cfg, err := ParseConfig(fs, []string{"-address", "flag-host:31416", "-audit"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}

	if cfg.Address != "flag-host:31416" {
		t.Fatalf("flag address not applied: %q", cfg.Address)
	}
	if !cfg.Audit {
		t.Fatal("audit flag not applied")
	}
}
