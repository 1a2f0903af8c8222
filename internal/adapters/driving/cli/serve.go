package cli

import (
	"context"
	"fmt"
	"net"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/servico/internal/adapters/driving/grpcapi"
	"github.com/custodia-labs/servico/internal/adapters/driving/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gRPC server",
	Long: `Start the gRPC server for the user and service record APIs.

The server listens on server.addr. When metrics.addr is set, a second HTTP
listener serves /metrics for Prometheus and /healthz for probes.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	opts := grpcapi.Options{
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
	}

	var metricsLis net.Listener
	var reg *prometheus.Registry
	if cfg.Metrics.Addr != "" {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m, err := metrics.New(reg, metrics.Counts{Users: a.users.Count, Services: a.services.Count})
		if err != nil {
			return fmt.Errorf("registering metrics: %w", err)
		}
		opts.Observer = m

		metricsLis, err = net.Listen("tcp", cfg.Metrics.Addr)
		if err != nil {
			return fmt.Errorf("listening on %s: %w", cfg.Metrics.Addr, err)
		}
	}

	lis, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		if metricsLis != nil {
			_ = metricsLis.Close()
		}
		return fmt.Errorf("listening on %s: %w", cfg.Server.Addr, err)
	}

	srv := grpcapi.NewServer(grpcapi.NewHandler(a.users, a.services), opts)
	cmd.Printf("servico %s serving gRPC on %s\n", version, lis.Addr())

	errCh := make(chan error, 2)
	running := 1
	go func() { errCh <- grpcapi.Serve(ctx, srv, lis) }()
	if metricsLis != nil {
		running++
		cmd.Printf("Metrics on http://%s/metrics\n", metricsLis.Addr())
		go func() { errCh <- metrics.Serve(ctx, metricsLis, metrics.NewRouter(reg)) }()
	}

	// The first listener to stop takes the other one down with it.
	var firstErr error
	for range running {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
		}
		cancel()
	}
	return firstErr
}
