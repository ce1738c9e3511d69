package main

import (
	"checkout_webhooks/internal/adapter/http/routes"
	"checkout_webhooks/internal/config"
	"checkout_webhooks/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the webhook HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if cfg.LogLevel != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}
			if cfg.CaktoWebhookSecret == "" {
				log.Warn("CAKTO_WEBHOOK_SECRET not set; cakto webhooks will be rejected")
			}
			if cfg.HotmartHottok == "" {
				log.Warn("HOTMART_HOTTOK not set; hotmart webhooks will be rejected")
			}
			log.Info("starting", zap.Int("port", cfg.Port), zap.Bool("functions_mock", cfg.Functions.Mock))
			return routes.Run(cmd.Context(), cfg, log)
		},
	}
}
