package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shadowgraph/shadowgraph-go/pkg/apierrors"
)

var faceSearchText string

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run discovery scans",
}

var scanFaceCmd = &cobra.Command{
	Use:   "face <image>",
	Short: "Scan an image for face matches and fake-detection signals",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open image: %w", err)
		}
		defer func() { _ = f.Close() }()

		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		result, err := client.ScanFace(cmd.Context(), f, filepath.Base(args[0]), faceSearchText)
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var scanUsernameCmd = &cobra.Command{
	Use:   "username <name>",
	Short: "Discover a username across platforms",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		matches, err := client.ScanUsername(cmd.Context(), args[0])
		if err != nil {
			// A blank username is worth a nudge, not an error exit.
			var typed *apierrors.Error
			if errors.As(err, &typed) && typed.Code == apierrors.CodeValidationError {
				toasts.Info(typed.Message)
				return nil
			}
			return err
		}
		if len(matches) == 0 {
			fmt.Println("No confirmed profiles found.")
			return nil
		}
		return printJSON(matches)
	},
}

func init() {
	scanFaceCmd.Flags().StringVar(&faceSearchText, "search", "", "optional text to narrow presence lookup")
	scanCmd.AddCommand(scanFaceCmd, scanUsernameCmd)
	rootCmd.AddCommand(scanCmd)
}
