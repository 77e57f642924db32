package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/garrettladley/notemap/internal/xcontext"
	"github.com/garrettladley/notemap/internal/xslog"
)

type runFunc func(cmd *cobra.Command, args []string, a *app) error

// withApp wires the app for a single command invocation.
func withApp(fn runFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		// every request of one invocation shares the id, tying its log lines together
		requestID := uuid.NewString()
		ctx := xcontext.SetRequestID(cmd.Context(), requestID)
		ctx = xslog.WithLogger(ctx, a.logger)
		ctx = xslog.WithAttrs(ctx,
			xslog.Command(cmd.CommandPath()),
			xslog.RequestID(requestID),
		)
		cmd.SetContext(ctx)

		xslog.FromContext(ctx).DebugContext(ctx, "running command")
		return fn(cmd, args, a)
	}
}
