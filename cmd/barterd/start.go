package main

import (
	"net/http"

	"github.com/iov-one/barter/app"
	bapp "github.com/iov-one/barter/cmd/barterd/app"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/notify"
	"github.com/iov-one/barter/x/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/abci/server"
	cmn "github.com/tendermint/tendermint/libs/common"
)

const (
	flagBind    = "bind"
	flagMetrics = "metrics"
	flagNats    = "nats"
)

func startCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Run the ABCI application",
		Args:  cobra.NoArgs,
		RunE:  runStart,
	}
	cmd.Flags().String(flagBind, "tcp://localhost:26658", "address server listens on")
	cmd.Flags().String(flagMetrics, "", "address of the prometheus endpoint, disabled if empty")
	cmd.Flags().String(flagNats, "", "NATS server receiving escrow events, disabled if empty")
	return cmd
}

func runStart(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	home, _ := flags.GetString(flagHome)
	debug, _ := flags.GetBool(flagDebug)
	bind, _ := flags.GetString(flagBind)
	metricsAddr, _ := flags.GetString(flagMetrics)
	natsURL, _ := flags.GetString(flagNats)

	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics, err := utils.NewMetrics(reg)
	if err != nil {
		return err
	}

	var sink app.EventSink
	var cleanup []func()
	if natsURL != "" {
		nc, err := notify.Connect(natsURL, "barterd")
		if err != nil {
			return err
		}
		cleanup = append(cleanup, nc.Close)
		sink = notify.NewSink(nc, logger)
		logger.Info("Publishing escrow events", "nats", natsURL)
	}

	application, err := bapp.GenerateApp(home, logger, debug, metrics, sink)
	if err != nil {
		return err
	}

	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: metricsAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("Metrics server stopped", "err", err)
			}
		}()
		cleanup = append(cleanup, func() { srv.Close() })
		logger.Info("Serving metrics", "bind", metricsAddr)
	}

	logger.Info("Starting ABCI app", "bind", bind)
	svr, err := server.NewServer(bind, "socket", application)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot create listener: %s", err)
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		return errors.Wrapf(errors.ErrState, "cannot start server: %s", err)
	}

	cmn.TrapSignal(logger, func() {
		svr.Stop()
		for _, fn := range cleanup {
			fn()
		}
	})

	// Run forever, TrapSignal exits the process.
	select {}
}
