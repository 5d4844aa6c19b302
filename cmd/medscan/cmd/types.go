package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// typesCmd represents the types command.
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the supported test types",
	Long: `List every supported test type family with its category and detection
keywords. With --glossary, print the family's jargon glossary instead.

Examples:
  medscan types
  medscan types --glossary echocardiogram`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		reg, closeStore, err := buildRegistry(cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		w := cmd.OutOrStdout()
		if typeID, _ := cmd.Flags().GetString("glossary"); typeID != "" {
			glossary := reg.Glossary(typeID)
			if glossary == nil {
				return fmt.Errorf("unknown test type %q", typeID)
			}
			out, err := json.MarshalIndent(glossary, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(w, string(out))
			return nil
		}

		types := reg.ListTypes()
		if cfg.Output.Format == "text" {
			for _, t := range types {
				fmt.Fprintf(w, "%-22s %-26s %s\n", t.ID, t.DisplayName, t.Category)
			}
			return nil
		}
		out, err := json.MarshalIndent(types, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(out))
		return nil
	},
}

func init() {
	typesCmd.Flags().String("glossary", "", "print the glossary for the given test type id")
	rootCmd.AddCommand(typesCmd)
}
