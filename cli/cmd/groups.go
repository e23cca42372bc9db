package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var groupsCmd = &cobra.Command{
	Use:   "groups [minWords]",
	Short: "Print anagram groups of at least minWords words, largest first",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		minWords := 10
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("minWords: %w", err)
			}
			minWords = n
		}

		idx, err := loadIndex(false)
		if err != nil {
			return err
		}

		for _, group := range idx.Groups(minWords) {
			fmt.Println()
			for _, word := range group.Words {
				if _, err := fmt.Fprintf(os.Stdout, "%s\n", word); err != nil {
					return err
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(groupsCmd)
}
