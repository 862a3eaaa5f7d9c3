package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var verbose int

	rootCmd := &cobra.Command{
		Use:   "textscan",
		Short: "Cursor-based text scanning and literal unescaping",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newUnescapeCmd())
	rootCmd.AddCommand(newLinesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
