package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"backoffice/internal/client"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

// settings are read from DASHCTL_* environment variables and overridden by flags.
type settings struct {
	Server  string        `envconfig:"SERVER" default:"http://localhost:8080"`
	Token   string        `envconfig:"TOKEN"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

var (
	flagServer string
	flagToken  string
	flagJSON   bool
)

var rootCmd = &cobra.Command{
	Use:   "dashctl",
	Short: "Back-office dashboard from the terminal",
	Long: `dashctl reads the back-office dashboard aggregations.

The server and bearer token default to DASHCTL_SERVER and DASHCTL_TOKEN.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "API base URL (overrides DASHCTL_SERVER)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "Bearer token (overrides DASHCTL_TOKEN)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Print raw JSON")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(growthCmd)
	rootCmd.AddCommand(locationsCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(snapshotCmd)
}

func loadSettings() (settings, error) {
	var s settings
	if err := envconfig.Process("DASHCTL", &s); err != nil {
		return s, fmt.Errorf("reading DASHCTL_* environment: %w", err)
	}
	if flagServer != "" {
		s.Server = flagServer
	}
	if flagToken != "" {
		s.Token = flagToken
	}
	return s, nil
}

// newClient returns a client and a context bounded by the configured timeout.
func newClient(cmd *cobra.Command) (*client.DashboardClient, context.Context, context.CancelFunc, error) {
	s, err := loadSettings()
	if err != nil {
		return nil, nil, nil, err
	}
	c := client.New(s.Server, s.Token)
	ctx, cancel := context.WithTimeout(cmd.Context(), s.Timeout)
	return c, ctx, cancel, nil
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
