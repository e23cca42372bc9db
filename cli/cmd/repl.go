package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/doublescale/anagrind"
	"github.com/doublescale/anagrind/search"
)

// replResultLimit caps the answer per REPL query.
const replResultLimit = 20

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read one query per line from stdin, print up to 20 results each",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := loadIndex(false)
		if err != nil {
			return err
		}

		prompt := term.IsTerminal(int(os.Stdin.Fd()))
		scanner := bufio.NewScanner(os.Stdin)
		for {
			if prompt {
				fmt.Print("\nQuery: ")
			}
			if !scanner.Scan() {
				break
			}
			input := scanner.Text()
			if input == "" {
				continue
			}
			ctx := anagrind.Find(idx, search.Query{Input: input}, replResultLimit)
			if err := anagrind.WriteResults(os.Stdout, ctx, ""); err != nil {
				return err
			}
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
