// Package matchmaker wires the matchmaking service to its external
// boundaries: the Google Calendar meeting provider, the Telegram
// notification sink, and a gRPC health endpoint for ops probes.
package matchmaker

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/louisbranch/agora/internal/matchmaking/domain"
	"github.com/louisbranch/agora/internal/matchmaking/service"
	"github.com/louisbranch/agora/internal/meeting/googlecal"
	"github.com/louisbranch/agora/internal/notify/telegram"
	platformcmd "github.com/louisbranch/agora/internal/platform/cmd"
	"github.com/louisbranch/agora/internal/render"
)

// Config holds the matchmaker command configuration.
type Config struct {
	// GRPCAddr is the listen address for the health endpoint.
	GRPCAddr string `env:"AGORA_MATCHMAKER_GRPC_ADDR" envDefault:"localhost:8090"`
	// TelegramToken authenticates the notification bot.
	TelegramToken string `env:"AGORA_TELEGRAM_BOT_TOKEN"`
	// GoogleCredentialsFile points at a service-account JSON key with
	// calendar access.
	GoogleCredentialsFile string `env:"AGORA_GOOGLE_CREDENTIALS_FILE"`

	TeamsPerRoom  int           `env:"AGORA_TEAMS_PER_ROOM" envDefault:"4"`
	JudgesPerRoom int           `env:"AGORA_JUDGES_PER_ROOM" envDefault:"1"`
	MeetDuration  time.Duration `env:"AGORA_MEET_DURATION" envDefault:"2h30m"`
	TimeZone      string        `env:"AGORA_TIME_ZONE" envDefault:"Europe/Rome"`
	Languages     []string      `env:"AGORA_LANGUAGES" envDefault:"en,ru"`
}

// ParseConfig loads env defaults and layers flag overrides on top.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.GRPCAddr, "grpc-addr", cfg.GRPCAddr, "gRPC health listen address")
	fs.StringVar(&cfg.GoogleCredentialsFile, "google-credentials", cfg.GoogleCredentialsFile, "Google service-account credentials file")
	fs.IntVar(&cfg.TeamsPerRoom, "teams-per-room", cfg.TeamsPerRoom, "teams required to open a room")
	fs.IntVar(&cfg.JudgesPerRoom, "judges-per-room", cfg.JudgesPerRoom, "judges required to open a room")
	fs.DurationVar(&cfg.MeetDuration, "meet-duration", cfg.MeetDuration, "scheduled meeting length")
	fs.StringVar(&cfg.TimeZone, "time-zone", cfg.TimeZone, "IANA time zone for meeting windows")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the matchmaker service and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceMatchmaker, func(ctx context.Context) error {
		sink, err := telegram.New(cfg.TelegramToken)
		if err != nil {
			return fmt.Errorf("init telegram sink: %w", err)
		}
		provider, err := googlecal.New(ctx, cfg.GoogleCredentialsFile)
		if err != nil {
			return fmt.Errorf("init calendar provider: %w", err)
		}

		svc, err := service.New(domain.Config{
			TeamsPerRoom:  cfg.TeamsPerRoom,
			JudgesPerRoom: cfg.JudgesPerRoom,
			MeetDuration:  cfg.MeetDuration,
			TimeZone:      cfg.TimeZone,
			Languages:     cfg.Languages,
		}, provider, sink, render.New())
		if err != nil {
			return fmt.Errorf("init matchmaking service: %w", err)
		}

		stats := svc.WaitingStats()
		log.Printf("matchmaker ready: %d language pools, %s shape %d teams / %d judges",
			len(stats.Languages), cfg.TimeZone, cfg.TeamsPerRoom, cfg.JudgesPerRoom)

		return serveHealth(ctx, cfg.GRPCAddr)
	})
}

// serveHealth exposes the gRPC health endpoint until the context ends.
func serveHealth(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	server := grpc.NewServer()
	checker := health.NewServer()
	checker.SetServingStatus(platformcmd.ServiceMatchmaker, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, checker)

	errc := make(chan error, 1)
	go func() {
		log.Printf("health endpoint listening on %s", listener.Addr())
		errc <- server.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		checker.Shutdown()
		server.GracefulStop()
		return nil
	case err := <-errc:
		return fmt.Errorf("serve health: %w", err)
	}
}
