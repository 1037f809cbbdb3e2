package cmd

import (
	"github.com/spf13/cobra"

	shadowgraph "github.com/shadowgraph/shadowgraph-go"
)

var riskInputs shadowgraph.RiskInputs

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Calculate the exposure risk score",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		var inputs *shadowgraph.RiskInputs
		if cmd.Flags().Changed("public-profiles") || cmd.Flags().Changed("research-visibility") ||
			cmd.Flags().Changed("breach-exposure") || cmd.Flags().Changed("leak-indicators") {
			inputs = &riskInputs
		}

		score, err := client.CalculateRisk(cmd.Context(), inputs)
		if err != nil {
			return err
		}
		return printJSON(score)
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Fetch the identity graph built from scan history",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		graph, err := client.GraphData(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(graph)
	},
}

func init() {
	riskCmd.Flags().IntVar(&riskInputs.PublicProfiles, "public-profiles", 0, "public profile exposure (0-100)")
	riskCmd.Flags().IntVar(&riskInputs.ResearchVisibility, "research-visibility", 0, "research visibility (0-100)")
	riskCmd.Flags().IntVar(&riskInputs.BreachExposure, "breach-exposure", 0, "breach exposure (0-100)")
	riskCmd.Flags().IntVar(&riskInputs.LeakIndicators, "leak-indicators", 0, "data leak indicators (0-100)")
	rootCmd.AddCommand(riskCmd, graphCmd)
}
