package cli

import (
	"fmt"
	"os"

	"github.com/airis-labs/airis-extract/internal/export"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <export.json>",
	Short: "Check an export against the export schema without extracting",
	Long: `Validate an export document against the embedded JSON Schema.

Declared sizes and counts (size, totalFiles, totalSize) are compared with the
actual records and reported as warnings; they never make an export invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading export %s: %w", path, err)
		}

		result, err := export.Inspect(data)
		if err != nil {
			return fmt.Errorf("inspecting %s: %w", path, err)
		}

		w := cmd.OutOrStdout()
		if result.Valid {
			fmt.Fprintf(w, "[ OK ] %s matches the export schema\n", path)
		} else {
			fmt.Fprintf(w, "[FAIL] %s does not match the export schema\n", path)
			for _, issue := range result.Issues {
				loc := issue.Path
				if loc == "" {
					loc = "(root)"
				}
				fmt.Fprintf(w, "         %s: %s [%s]\n", loc, issue.Message, issue.Keyword)
			}
		}
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "[WARN] %s\n", warning)
		}

		if !result.Valid {
			return fmt.Errorf("%s: %d schema issue(s)", path, len(result.Issues))
		}
		return nil
	},
}
