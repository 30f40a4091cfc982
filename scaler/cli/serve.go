package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/twitter/taskscaler/common/client"
	"github.com/twitter/taskscaler/common/endpoints"
	"github.com/twitter/taskscaler/common/stats"
	"github.com/twitter/taskscaler/scaler"
)

type serveCmd struct {
	interval time.Duration
	httpAddr string
}

func (c *serveCmd) RegisterFlags() *cobra.Command {
	r := &cobra.Command{
		Use:   "serve",
		Short: "Run an invocation now and then on every interval, serving health and metrics",
	}
	r.Flags().DurationVar(&c.interval, "interval", 5*time.Minute, "Time between invocations")
	r.Flags().StringVar(&c.httpAddr, "http_addr", "localhost:9091", "Address to serve /health and /admin/metrics.json on")
	return r
}

func (c *serveCmd) Run(cl *client.SimpleClient, cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			log.Infof("Received %v, stopping", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return serve(ctx, cl.Scaler, cl.Stat, c.interval, c.httpAddr)
}

func serve(ctx context.Context, inv scaler.Invoker, stat stats.StatsReceiver, interval time.Duration, addr string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	server := endpoints.NewTwitterServer(addr, stat)
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Serve(ctx)
		cancel()
	}()

	stats.ReportServerStart(stat, stats.ScalerServerStartedGauge)
	cron, stop := scaler.NewCron(inv, interval)
	defer stop()
	log.WithFields(log.Fields{"interval": interval, "addr": addr}).Info("Starting scaler loop")
	cron.Loop(ctx)

	cancel()
	return <-serverErr
}
