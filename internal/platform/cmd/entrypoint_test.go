package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type entrypointFixture struct {
	Port int `env:"AGORA_ENTRYPOINT_TEST_PORT" envDefault:"8082"`
}

func TestParseConfigNil(t *testing.T) {
	if err := ParseConfig[entrypointFixture](nil); err == nil {
		t.Fatal("expected error for nil config target")
	}
}

func TestParseConfigFromArgs(t *testing.T) {
	t.Setenv("AGORA_ENTRYPOINT_TEST_PORT", "9000")

	var cfg entrypointFixture
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "port")
	if err := ParseArgs(fs, []string{"-port", "9001"}); err != nil {
		t.Fatalf("parse args: %v", err)
	}
	if cfg.Port != 9001 {
		t.Fatalf("expected flag override 9001, got %d", cfg.Port)
	}
}

func TestParseArgsNilParser(t *testing.T) {
	if err := ParseArgs(nil, nil); err == nil {
		t.Fatal("expected error for nil flag parser")
	}
}

func TestRunWithTelemetryRequiresService(t *testing.T) {
	err := RunWithTelemetry(context.Background(), "  ", func(context.Context) error { return nil })
	if err == nil {
		t.Fatal("expected error for blank service name")
	}
}

func TestRunWithTelemetryRequiresRun(t *testing.T) {
	err := RunWithTelemetry(context.Background(), ServiceMatchmaker, nil)
	if err == nil {
		t.Fatal("expected error for nil run function")
	}
}

func TestRunWithTelemetryPropagatesRunError(t *testing.T) {
	want := errors.New("run failed")
	err := RunWithTelemetry(context.Background(), ServiceMatchmaker, func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("expected run error, got %v", err)
	}
}
