package main

import (
	"fmt"
	"strings"

	"github.com/dhamidi/textscan/cursor"
	"github.com/spf13/cobra"
)

func newLinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lines <file>",
		Short: "Print the byte range of every line in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			cur := cursor.New(string(data))
			for !cur.Empty() {
				start := cur.Pos()
				line := cur.FocusLine()
				fmt.Printf("%d..%d %s\n", start, cur.Pos(), strings.TrimRight(line.Input(), "\r\n"))
			}
			return nil
		},
	}
}
