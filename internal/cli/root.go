package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mithrel/nodehtml/internal/config"
	"github.com/mithrel/nodehtml/internal/wire"
)

type ctxKey string

const appKey ctxKey = "app"

// skipAppAnnotation marks commands that run without loading config or
// building the App (config generation must work with a broken config).
const skipAppAnnotation = "nodehtml/skip-app"

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command and wires dependencies.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "nodehtml-cli",
		Short:         "nodehtml CLI: render node documents and text spans to HTML",
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsApp(cmd) {
				return nil
			}
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			applyFlagOverrides(cmd, v)
			if err := config.CheckConfigValidity(v); err != nil {
				return fmt.Errorf("invalid config:\n%w", err)
			}
			app, err := wire.BuildApp(cmd.Context(), v)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, appKey, app))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app, ok := appFrom(cmd); ok {
				return app.Close()
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (toml)")

	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newSpansCmd())
	cmd.AddCommand(newFingerprintCmd())
	cmd.AddCommand(newStylesCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func skipsApp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[skipAppAnnotation]; ok {
			return true
		}
	}
	return false
}

func appFrom(cmd *cobra.Command) (*wire.App, bool) {
	if cmd.Context() == nil {
		return nil, false
	}
	app, ok := cmd.Context().Value(appKey).(*wire.App)
	return app, ok
}

func getApp(cmd *cobra.Command) *wire.App {
	app, ok := appFrom(cmd)
	if !ok {
		fmt.Fprintln(os.Stderr, "internal error: app not initialized")
		os.Exit(1)
	}
	return app
}
