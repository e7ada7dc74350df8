// Package info parses ptsl-info flags and prints host and session facts.
package info

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/louisbranch/ptsl/client"
	"github.com/louisbranch/ptsl/engine"
	entrypoint "github.com/louisbranch/ptsl/internal/platform/cmd"
)

// Config holds ptsl-info command configuration.
type Config struct {
	Address     string        `env:"PTSL_ADDRESS" envDefault:"localhost:31416"`
	TokenFile   string        `env:"PTSL_TOKEN_FILE"`
	Company     string        `env:"PTSL_COMPANY" envDefault:"louisbranch"`
	Application string        `env:"PTSL_APPLICATION" envDefault:"ptsl-info"`
	Audit       bool          `env:"PTSL_AUDIT" envDefault:"false"`
	DialTimeout time.Duration `env:"PTSL_DIAL_TIMEOUT" envDefault:"10s"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Address, "address", cfg.Address, "The host gRPC address")
	fs.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "Path to an API token file")
	fs.StringVar(&cfg.Company, "company", cfg.Company, "Company name sent during registration")
	fs.StringVar(&cfg.Application, "application", cfg.Application, "Application name sent during registration")
	fs.BoolVar(&cfg.Audit, "audit", cfg.Audit, "Print the command transcript to stderr")
	fs.DurationVar(&cfg.DialTimeout, "dial-timeout", cfg.DialTimeout, "Connection timeout")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run connects to the host and prints host and session facts.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceInfo, func(ctx context.Context) error {
		return run(ctx, cfg, out)
	})
}

func run(ctx context.Context, cfg Config, out io.Writer) error {
	eng, err := engine.Open(ctx, client.Config{
		Address:         cfg.Address,
		TokenFile:       cfg.TokenFile,
		CompanyName:     cfg.Company,
		ApplicationName: cfg.Application,
		Auditing:        cfg.Audit,
		DialTimeout:     cfg.DialTimeout,
	})
	if err != nil {
		return err
	}
	defer eng.Close()

	version, err := eng.PTSLVersion(ctx)
	if err != nil {
		return fmt.Errorf("read host version: %w", err)
	}
	fmt.Fprintf(out, "PTSL version: %d\n", version)

	// Session facts are best-effort: the host reports a command error
	// when no session is open.
	name, err := eng.SessionName(ctx)
	if err != nil {
		var cmdErr *client.CommandError
		if errors.As(err, &cmdErr) {
			fmt.Fprintln(out, "No session open.")
			return nil
		}
		return fmt.Errorf("read session name: %w", err)
	}
	fmt.Fprintf(out, "Session: %s\n", name)

	if path, err := eng.SessionPath(ctx); err == nil {
		fmt.Fprintf(out, "Path: %s\n", path)
	}
	if rate, err := eng.SessionSampleRate(ctx); err == nil {
		fmt.Fprintf(out, "Sample rate: %d Hz\n", rate)
	}
	if format, err := eng.SessionAudioFormat(ctx); err == nil {
		fmt.Fprintf(out, "Audio format: %s\n", format)
	}
	if depth, err := eng.SessionBitDepth(ctx); err == nil {
		fmt.Fprintf(out, "Bit depth: %s\n", depth)
	}
	if state, err := eng.TransportState(ctx); err == nil {
		fmt.Fprintf(out, "Transport: %s\n", state)
	}
	return nil
}
