// Command stoopc is debug glue around the transform library: it contains
// no styling logic of its own, only ways to poke the Hasher and Token
// Resolver from a shell, to compile an authored theme into the JSON
// metadata blob a bundler would hand to the transform entry point, and to
// run a fixture module through the full transform and print the result.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"stoopc/config"
	"stoopc/state"
)

func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	env := state.EnvFromContext(ctx)
	level := "none"
	if cmd.Bool("debug") {
		level = "debug"
	}
	env.Log = config.NewLogger(level)
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	env.Log.Debug("stoopc: done", zap.Duration("elapsed", env.Uptime()))
	_ = env.Log.Sync()
	return nil
}

// errWasHandled tracks whether exitErrHandler already reported err, so main
// doesn't print it a second time on the way out.
var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	log := state.EnvFromContext(ctx).Log
	if log == nil || !log.Core().Enabled(zap.ErrorLevel) {
		return
	}
	log.Error("stoopc: command failed", zap.Error(err))
	errWasHandled = true
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Log.Warn("stoopc: unknown command", zap.String("command", name))
}

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            "stoopc",
		Usage:           "debug tools for the stoop CSS-in-JS transform",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "enable debug logging to stderr"},
		},
		Commands: []*cli.Command{
			hashCommand(),
			kebabCommand(),
			themeCommand(),
			renderCommand(),
		},
	}

	var err error
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "stoopc: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}
