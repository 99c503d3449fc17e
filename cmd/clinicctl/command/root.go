package command

import (
	"context"
	"fmt"
	"os"

	"github.com/DataDog/datadog-agent/pkg/util/fxutil"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/pallium-care/console/api"
	"github.com/pallium-care/console/backend"
)

const tokenEnvVar = "CONSOLE_API_TOKEN"

var logLevel string
var token string

// Run executes a given function with dependencies supplied by the console DI graph
// `f` must return an error or nothing
// `opts` can be used to supply additional arguments that are not provided by the console
func Run(f interface{}, opts ...fx.Option) error {
	deps := append(opts, api.Dependencies()...)
	return fxutil.OneShot(f, deps...)
}

// sessionContext carries the backend session token of the operator.
func sessionContext() (context.Context, error) {
	if token == "" {
		return nil, fmt.Errorf("a session token is required, use --token or %s", tokenEnvVar)
	}
	return backend.WithToken(context.Background(), token), nil
}

var rootCmd = &cobra.Command{
	Use:   "clinicctl",
	Short: "Helper tool to query the palliative care clinic",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Overwrite zap's log level
		return os.Setenv("LOG_LEVEL", logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "v", "error", "Log Level")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv(tokenEnvVar), "Backend session token")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
