package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/textscan/cursor"
	"github.com/dhamidi/textscan/unescape"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("textscan")

func readInput(name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

func newUnescapeCmd() *cobra.Command {
	var modeName string

	cmd := &cobra.Command{
		Use:   "unescape <file>",
		Short: "Decode escape sequences in literal content",
		Long: "Decode the content of a string or character literal (quotes already\n" +
			"stripped) and print each decoded unit with its byte range. Pass - to\n" +
			"read from stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			var mode unescape.Mode
			switch modeName {
			case "single":
				mode = unescape.Single
			case "double":
				mode = unescape.Double
			default:
				return fmt.Errorf("unknown mode: %s", modeName)
			}

			units, failed := 0, 0
			unescape.Text(cursor.New(string(data)), mode, func(r unescape.Range, ch rune, err error) {
				units++
				if err != nil {
					failed++
					fmt.Printf("%d..%d error: %v\n", r.Start, r.End, err)
					return
				}
				fmt.Printf("%d..%d %q\n", r.Start, r.End, ch)
			})
			log.Debugf("decoded %d units (%d invalid)", units, failed)

			if failed > 0 {
				return fmt.Errorf("%d invalid units", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&modeName, "mode", "m", "double", "literal mode (single, double)")

	return cmd
}
