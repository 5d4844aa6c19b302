package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// detectCmd represents the detect command.
var detectCmd = &cobra.Command{
	Use:   "detect [file]",
	Short: "Detect the test type of a medical report",
	Long: `Extract a medical report and detect which test family it belongs to.

With --multi, every family scoring at or above the configured threshold
is listed instead of just the winner; mixed documents (e.g. an echo with
an attached lab panel) report several types.

Examples:
  medscan detect report.pdf
  medscan detect report.pdf --multi`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("no input file provided")
		}

		cfg := GetConfig()
		p, err := buildPipeline(cfg)
		if err != nil {
			return err
		}
		reg, closeStore, err := buildRegistry(cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		res, err := ingest(cmd.Context(), p, args[0], cmd.InOrStdin())
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if multi, _ := cmd.Flags().GetBool("multi"); multi {
			candidates := reg.DetectMulti(res, cfg.Detection.MultiThreshold)
			if cfg.Output.Format == "text" {
				for _, c := range candidates {
					fmt.Fprintf(w, "%-30s %.2f\n", c.TypeID, c.Confidence)
				}
				return nil
			}
			out, err := json.MarshalIndent(candidates, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(w, string(out))
			return nil
		}

		id, confidence := reg.Detect(cmd.Context(), res)
		if id == "" {
			return errors.New("no test type handler matched the document")
		}
		if cfg.Output.Format == "text" {
			fmt.Fprintf(w, "%s %.2f\n", id, confidence)
			return nil
		}
		out, err := json.MarshalIndent(map[string]any{
			"test_type":  id,
			"confidence": confidence,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(out))
		return nil
	},
}

func init() {
	detectCmd.Flags().Bool("multi", false, "list every type above the detection threshold")
	rootCmd.AddCommand(detectCmd)
}
