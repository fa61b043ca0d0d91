package main

import (
	"context"
	"os/signal"
	"syscall"

	"shoppingpaglu/internal/server"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Create tables, seed the catalog and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	//テーブル作成の失敗はログに出して続行（SCHEMA_STRICTなら停止）
	if err := a.schema.Ensure(ctx); err != nil {
		if a.cfg.SchemaStrict {
			return err
		}
		a.log.WithError(err).Warn("schema incomplete, continuing")
	}

	e := a.buildServer()
	a.log.Infof("Server running on http://localhost%s", a.cfg.Addr())
	return server.Start(ctx, e, a.cfg.Addr())
}
