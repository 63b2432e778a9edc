package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ozacod/automation/internal/app/cli"
	"github.com/ozacod/automation/internal/app/cli/root"
)

func main() {
	rootCmd := root.GetRootCmd()

	// Register all actions
	rootCmd.AddCommand(cli.CleanCmd())
	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.BuildCmds()...)
	rootCmd.AddCommand(cli.FmtCmd())

	// Interrupting stops the running tool instead of leaving it orphaned
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := root.Execute(ctx)
	stop()
	os.Exit(code)
}
