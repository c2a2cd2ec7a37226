package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rithikkrisna/wificreds/internal/cliutil"
	"github.com/rithikkrisna/wificreds/internal/output"
)

var ssidCmd = &cobra.Command{
	Use:   "ssid [name]",
	Short: "Print the resolved SSID",
	Long:  `Print the SSID for the given name, or for the default entry when no name is given or the name is not found.`,
	Args:  cobra.MaximumNArgs(1),
	Run:   runSSID,
}

var passwordCmd = &cobra.Command{
	Use:   "password [name]",
	Short: "Print the resolved password",
	Long: `Print the password for the given name, or for the default entry when
no name is given or the name is not found. The password goes to stdout only;
it is never written to the log.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPassword,
}

func init() {
	rootCmd.AddCommand(ssidCmd)
	rootCmd.AddCommand(passwordCmd)
}

func runSSID(cmd *cobra.Command, args []string) {
	name := resolveArg(args)
	table, logger := loadTable()

	cred, ok := table.Resolve(name)
	if !ok {
		cliutil.ExitWithCode(cliutil.ExitNotFound, "credential table is empty")
	}
	logFallback(logger, table, name, cred)

	if flagJSON {
		output.OutputJSON(map[string]string{"ssid": cred.SSID}, nil)
		return
	}
	fmt.Println(cred.SSID)
}

func runPassword(cmd *cobra.Command, args []string) {
	name := resolveArg(args)
	table, logger := loadTable()

	cred, ok := table.Resolve(name)
	if !ok {
		cliutil.ExitWithCode(cliutil.ExitNotFound, "credential table is empty")
	}
	logFallback(logger, table, name, cred)

	if flagJSON {
		output.OutputJSON(map[string]string{"password": cred.Password}, nil)
		return
	}
	fmt.Println(cred.Password)
}
