package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"checkout_webhooks/internal/config"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

// replayCmd re-sends a stored webhook payload with the internal bearer
// credential, which bypasses the provider secret check.
func replayCmd() *cobra.Command {
	var provider, file, baseURL, key string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Re-send a stored provider payload to a running server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			provider = strings.ToLower(strings.TrimSpace(provider))
			if provider != "cakto" && provider != "hotmart" {
				return fmt.Errorf("unsupported provider %q", provider)
			}
			body, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read payload: %w", err)
			}
			if key == "" {
				key = config.ServiceRoleKey()
			}
			if key == "" {
				return errors.New("SERVICE_ROLE_KEY is required (env or --key)")
			}

			resp, err := resty.New().
				SetTimeout(timeout).
				R().
				SetContext(cmd.Context()).
				SetAuthToken(key).
				SetHeader("Content-Type", "application/json").
				SetBody(body).
				Post(strings.TrimRight(baseURL, "/") + "/webhooks/" + provider)
			if err != nil {
				return fmt.Errorf("replay request: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", resp.StatusCode(), strings.TrimSpace(resp.String()))
			if resp.IsError() {
				return fmt.Errorf("replay rejected with status %d", resp.StatusCode())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&provider, "provider", "p", "", "Provider of the payload (cakto, hotmart)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the raw JSON payload")
	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the running server")
	cmd.Flags().StringVar(&key, "key", "", "Service role key (defaults to SERVICE_ROLE_KEY)")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "Request timeout")
	_ = cmd.MarkFlagRequired("provider")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
