package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/medscan/internal/pipeline"
	"github.com/MeKo-Tech/medscan/internal/report"
)

var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".bmp": true,
	".tif": true, ".tiff": true, ".gif": true,
}

// extractCmd represents the extract command.
var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract text, pages, and tables from a medical report",
	Long: `Extract a medical report into pages, tables, and full text.

PDFs are routed page by page: pages with a usable text layer keep their
native text, scanned pages go through OCR. Images are OCRed directly.
Pass "-" to read pasted report text from stdin.

Examples:
  medscan extract report.pdf
  medscan extract scan.png --format json
  cat report.txt | medscan extract -`,
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

		res, err := ingest(cmd.Context(), p, args[0], cmd.InOrStdin())
		if err != nil {
			return err
		}
		return writeExtraction(cmd.OutOrStdout(), res, cfg.Output.Format)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

// ingest routes the input to the matching extraction path: "-" reads
// pasted text from stdin, otherwise the file extension decides.
func ingest(ctx context.Context, p *pipeline.Pipeline, arg string, stdin io.Reader) (*report.ExtractionResult, error) {
	if arg == "-" {
		text, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return p.FromText(string(text))
	}

	ext := strings.ToLower(filepath.Ext(arg))
	switch {
	case ext == ".pdf":
		return p.FromPDF(ctx, arg)
	case imageExtensions[ext]:
		return p.FromImage(ctx, arg)
	case ext == ".txt":
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, err
		}
		return p.FromText(string(data))
	default:
		return nil, fmt.Errorf("unsupported input type %q (want .pdf, an image, .txt, or \"-\")", ext)
	}
}

func writeExtraction(w io.Writer, res *report.ExtractionResult, format string) error {
	if format == "text" {
		fmt.Fprintf(w, "Input: %s (%s), %d page(s), %d chars\n",
			res.Filename, res.InputMode, res.TotalPages, res.TotalChars)
		if res.Detection != nil {
			fmt.Fprintf(w, "Document type: %s\n", res.Detection.OverallType)
		}
		if res.EMRSource != "" {
			fmt.Fprintf(w, "EMR source: %s (%.0f%%)\n", res.EMRSource, res.EMRSourceConfidence*100)
		}
		for _, warning := range res.Warnings {
			fmt.Fprintf(w, "Warning: %s\n", warning)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, res.FullText)
		return nil
	}

	out, err := report.ExtractionToJSON(res)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, out)
	return nil
}
