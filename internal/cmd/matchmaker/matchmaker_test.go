package matchmaker

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("matchmaker", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.GRPCAddr != "localhost:8090" {
		t.Fatalf("unexpected default addr %q", cfg.GRPCAddr)
	}
	if cfg.TeamsPerRoom != 4 || cfg.JudgesPerRoom != 1 {
		t.Fatalf("unexpected room shape %d/%d", cfg.TeamsPerRoom, cfg.JudgesPerRoom)
	}
	if cfg.MeetDuration != 2*time.Hour+30*time.Minute {
		t.Fatalf("unexpected meet duration %v", cfg.MeetDuration)
	}
	if cfg.TimeZone != "Europe/Rome" {
		t.Fatalf("unexpected time zone %q", cfg.TimeZone)
	}
	if len(cfg.Languages) != 2 || cfg.Languages[0] != "en" || cfg.Languages[1] != "ru" {
		t.Fatalf("unexpected languages %v", cfg.Languages)
	}
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("AGORA_MATCHMAKER_GRPC_ADDR", "localhost:9999")
	t.Setenv("AGORA_LANGUAGES", "en")

	fs := flag.NewFlagSet("matchmaker", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-teams-per-room", "2"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.GRPCAddr != "localhost:9999" {
		t.Fatalf("env override lost: %q", cfg.GRPCAddr)
	}
	if cfg.TeamsPerRoom != 2 {
		t.Fatalf("flag override lost: %d", cfg.TeamsPerRoom)
	}
	if len(cfg.Languages) != 1 {
		t.Fatalf("unexpected languages %v", cfg.Languages)
	}
}
