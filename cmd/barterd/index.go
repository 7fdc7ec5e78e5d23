package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/indexer"
	"github.com/iov-one/barter/notify"
	"github.com/spf13/cobra"
)

const flagPostgres = "postgres"

func indexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Copy escrow events from NATS into Postgres",
		Args:  cobra.NoArgs,
		RunE:  runIndex,
	}
	cmd.Flags().String(flagNats, "nats://localhost:4222", "NATS server publishing escrow events")
	cmd.Flags().String(flagPostgres, "", "Postgres connection string")
	return cmd
}

func runIndex(cmd *cobra.Command, args []string) error {
	natsURL, _ := cmd.Flags().GetString(flagNats)
	dsn, _ := cmd.Flags().GetString(flagPostgres)
	if dsn == "" {
		return errors.Wrap(errors.ErrEmpty, "--postgres is required")
	}
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := indexer.Open(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	store := indexer.NewStore(indexer.SQL(db))
	if err := store.Migrate(ctx); err != nil {
		return err
	}

	nc, err := notify.Connect(natsURL, "barterd-indexer")
	if err != nil {
		return err
	}
	defer nc.Close()

	return indexer.New(store, logger).Run(ctx, nc)
}
