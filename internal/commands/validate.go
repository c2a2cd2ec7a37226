package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rithikkrisna/wificreds/internal/cliutil"
	"github.com/rithikkrisna/wificreds/internal/output"
)

var checkCmd = &cobra.Command{
	Use:   "check <name>",
	Short: "Check whether a name exists in the table",
	Long: `Check whether an entry with exactly this name exists. Unlike the
getters, check never falls back to the default entry.`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

var validateCmd = &cobra.Command{
	Use:   "validate [name]",
	Short: "Validate the resolved credential",
	Long: `Validate that the credential resolved for the given name (or the
default entry) has a non-empty SSID and password, and report their byte
lengths.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runValidate,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(validateCmd)
}

func runCheck(cmd *cobra.Command, args []string) {
	name := args[0]
	table, _ := loadTable()

	found := table.Has(name)

	if flagJSON {
		output.OutputJSON(map[string]interface{}{"name": name, "found": found}, nil)
	} else if found {
		fmt.Printf("%s: found\n", name)
	} else {
		fmt.Printf("%s: not found\n", name)
	}

	if !found {
		os.Exit(cliutil.ExitNotFound)
	}
}

func runValidate(cmd *cobra.Command, args []string) {
	name := resolveArg(args)
	table, logger := loadTable()

	if cred, ok := table.Resolve(name); ok {
		logFallback(logger, table, name, cred)
	}

	valid := table.IsValid(name)
	ssidLen := table.SSIDLength(name)
	passwordLen := table.PasswordLength(name)

	if flagJSON {
		output.OutputJSON(map[string]interface{}{
			"valid":           valid,
			"ssid_length":     ssidLen,
			"password_length": passwordLen,
		}, nil)
	} else {
		fmt.Printf("Valid:           %t\n", valid)
		fmt.Printf("SSID length:     %d\n", ssidLen)
		fmt.Printf("Password length: %d\n", passwordLen)
	}

	if !valid {
		os.Exit(cliutil.ExitGeneralError)
	}
}
