package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shadowgraph/shadowgraph-go/pkg/apierrors"
)

var opsWatch time.Duration

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "Show backend readiness checks",
	Long: `Show which backend integrations are configured (HIBP key, OAuth
credentials, face models). With --watch the checks are polled on a fixed
interval until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		show := func() error {
			readiness, err := client.OpsReadiness(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(readiness)
		}

		if opsWatch <= 0 {
			return show()
		}

		ticker := time.NewTicker(opsWatch)
		defer ticker.Stop()

		for {
			if err := show(); err != nil {
				// Keep watching through transient failures; a broken backend
				// is exactly when the operator is looking at this screen.
				toasts.Error(apierrors.Display(err, "Failed to load readiness checks."))
			}
			select {
			case <-cmd.Context().Done():
				return nil
			case <-ticker.C:
			}
		}
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Probe backend liveness",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		ok, err := client.Health(cmd.Context())
		if err != nil {
			return err
		}
		if ok {
			fmt.Println("Backend is up.")
		} else {
			fmt.Println("Backend responded but reported not OK.")
		}
		return nil
	},
}

func init() {
	opsCmd.Flags().DurationVar(&opsWatch, "watch", 0, "poll interval (e.g. 5s); 0 runs once")
	rootCmd.AddCommand(opsCmd, healthCmd)
}
