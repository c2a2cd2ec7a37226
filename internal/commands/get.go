package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rithikkrisna/wificreds/internal/cliutil"
	"github.com/rithikkrisna/wificreds/internal/output"
)

var getShowPassword bool

var getCmd = &cobra.Command{
	Use:   "get [name]",
	Short: "Get a credential entry",
	Long: `Get the credential entry for the given name. Without a name, or when
the name is not found, the default entry is returned.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGet,
}

func init() {
	getCmd.Flags().BoolVar(&getShowPassword, "show-password", false, "Print the password instead of masking it")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) {
	name := resolveArg(args)
	table, logger := loadTable()

	cred, ok := table.Resolve(name)
	if !ok {
		cliutil.ExitWithCode(cliutil.ExitNotFound, "credential table is empty")
	}
	logFallback(logger, table, name, cred)

	out := cred
	if !getShowPassword {
		out = cred.Masked()
	}

	if flagJSON {
		output.OutputJSON(out, nil)
		return
	}

	fmt.Printf("Name:     %s\n", out.Name)
	fmt.Printf("SSID:     %s\n", out.SSID)
	fmt.Printf("Password: %s\n", out.Password)
}
