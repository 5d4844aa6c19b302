package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/medscan/internal/report"
)

// parseCmd represents the parse command.
var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Extract a report and classify its measurements",
	Long: `Extract a medical report, detect its test type, and classify every
measurement against the family's reference ranges.

The test type is auto-detected unless --type pins it. --type accepts a
type id ("echocardiogram") or a free-text name ("echo").

Examples:
  medscan parse report.pdf
  medscan parse scan.png --type stress_test
  cat report.txt | medscan parse -`,
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

		typeID, _ := cmd.Flags().GetString("type")
		parsed, err := p.ParseReport(cmd.Context(), reg, res, typeID)
		if err != nil {
			return err
		}
		return writeParsed(cmd.OutOrStdout(), parsed, cfg.Output.Format)
	},
}

func init() {
	parseCmd.Flags().String("type", "", "pin the test type instead of auto-detecting")
	rootCmd.AddCommand(parseCmd)
}

func writeParsed(w io.Writer, parsed *report.ParsedReport, format string) error {
	if format == "text" {
		fmt.Fprintf(w, "Test type: %s (%s), confidence %.2f\n",
			parsed.TestTypeDisplay, parsed.TestType, parsed.DetectionConfidence)
		for _, warning := range parsed.Warnings {
			fmt.Fprintf(w, "Warning: %s\n", warning)
		}
		for _, m := range parsed.Measurements {
			fmt.Fprintf(w, "%-40s %g %s  [%s]", m.Name, m.Value, m.Unit, m.Status)
			if m.ReferenceRange != "" {
				fmt.Fprintf(w, "  (normal: %s)", m.ReferenceRange)
			}
			fmt.Fprintln(w)
		}
		return nil
	}

	out, err := report.ToJSON(parsed)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, out)
	return nil
}
