package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/medscan/internal/metrics"
	"github.com/MeKo-Tech/medscan/internal/registry"
)

// correctCmd represents the correct command.
var correctCmd = &cobra.Command{
	Use:   "correct [detected-type] [corrected-type]",
	Short: "Record a test type correction",
	Long: `Record that a detected test type was wrong and what it should have been.

Corrections accumulate in the configured corrections database and bias
future detections: repeatedly mis-detected types lose confidence, their
frequent corrections gain it.

Examples:
  medscan correct stress_test echocardiogram`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg.Detection.CorrectionsDB == "" {
			return errors.New("no corrections database configured (set detection.corrections_db)")
		}

		detected, corrected := args[0], args[1]
		reg := registry.Default(nil)
		for _, id := range []string{detected, corrected} {
			if _, h := reg.Resolve(id); h == nil {
				return fmt.Errorf("unknown test type %q", id)
			}
		}

		store, err := registry.OpenSQLiteStore(cfg.Detection.CorrectionsDB)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Record(cmd.Context(), detected, corrected); err != nil {
			return fmt.Errorf("recording correction: %w", err)
		}
		metrics.RecordCorrection()

		fmt.Fprintf(cmd.OutOrStdout(), "Recorded correction: %s -> %s\n", detected, corrected)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(correctCmd)
}
