package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "checkout_webhooks/docs"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// @title           Checkout Webhooks API
// @version         1.0
// @description     Payment-provider webhook ingestion and order reconciliation (Cakto, Hotmart).

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Internal calls: "Bearer" followed by the service role key.

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "checkout-webhooks",
		Short:         "Payment webhook reconciliation service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	serve := serveCmd()
	root.AddCommand(serve)
	root.AddCommand(replayCmd())
	root.RunE = serve.RunE
	return root
}
