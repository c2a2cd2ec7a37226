package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rithikkrisna/wificreds/internal/cliutil"
	"github.com/rithikkrisna/wificreds/internal/creds"
	"github.com/rithikkrisna/wificreds/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List credential entries",
	Long:  `List every entry in the credential table. Passwords are masked.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) {
	table, _ := loadTable()

	records := table.Records()
	masked := make([]creds.Credential, len(records))
	for i, r := range records {
		masked[i] = r.Masked()
	}

	if flagJSON {
		output.OutputJSON(masked, nil)
		return
	}

	w := output.NewTableWriter()
	w.WriteHeader("NAME", "SSID", "PASSWORD")
	for i, r := range masked {
		name := r.Name
		if i == 0 {
			name += " (default)"
		}
		w.WriteRow(name, r.SSID, r.Password)
	}
	if err := w.Flush(); err != nil {
		cliutil.ExitWithError(err, "failed to write table")
	}

	fmt.Printf("\n%d credential(s)\n", table.Count())
}
