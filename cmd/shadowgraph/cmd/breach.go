package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var breachCmd = &cobra.Command{
	Use:   "breach <email>",
	Short: "Check breach exposure for an email address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		breaches, err := client.CheckBreach(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(breaches) == 0 {
			fmt.Println("No breaches on record.")
			return nil
		}
		return printJSON(breaches)
	},
}

var researchInstitution string

var researchCmd = &cobra.Command{
	Use:   "research <full name>",
	Short: "Look up published research papers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		papers, err := client.SearchResearch(cmd.Context(), args[0], researchInstitution)
		if err != nil {
			return err
		}
		if len(papers) == 0 {
			fmt.Println("No papers found.")
			return nil
		}
		return printJSON(papers)
	},
}

func init() {
	researchCmd.Flags().StringVar(&researchInstitution, "institution", "", "affiliated institution")
	rootCmd.AddCommand(breachCmd, researchCmd)
}
