package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

type importOptions struct {
	Confirm bool
	Rejects string
	JSON    bool
}

func newRootCmd() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:           "importsheet [--confirm] [--rejects <path>] <file.xlsx>",
		Short:         "Preview a personnel spreadsheet and optionally apply it to the employee store",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Confirm, "confirm", false, "create and update employees from the valid rows")
	cmd.Flags().StringVar(&opts.Rejects, "rejects", "", `write invalid rows to a CSV file ("auto" derives the name from the source)`)
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "print results as JSON")

	return cmd
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
