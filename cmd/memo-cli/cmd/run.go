package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"memo/internal/adapters/script"
)

var runCmd = &cobra.Command{
	Use:   "run [file|-]",
	Short: "Run a note script",
	Long: `Run a note script, one command per line. Without a file, or with "-",
the script is read from standard input. Execution stops at the first
failing line.

Examples:
  memo-cli run notes.memo
  printf 'create buy milk\nlist\n' | memo-cli run`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.Reader = cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open script: %w", err)
			}
			defer f.Close()
			r = f
		}

		in := script.NewInterpreter(GetStore(), cmd.OutOrStdout(), GetLogger())
		return in.Run(cmd.Context(), r)
	},
}

var execCmd = &cobra.Command{
	Use:   "exec <line>...",
	Short: "Run script lines given as arguments",
	Long: `Run each argument as one script line.

Examples:
  memo-cli exec "create buy milk" "create call mom" "archive @2" "list"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := script.NewInterpreter(GetStore(), cmd.OutOrStdout(), GetLogger())
		for i, line := range args {
			if err := in.Exec(cmd.Context(), line); err != nil {
				return &script.LineError{Line: i + 1, Err: err}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(execCmd)
}
