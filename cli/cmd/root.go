package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/doublescale/anagrind"
	"github.com/doublescale/anagrind/search"
)

var (
	rootCmd = &cobra.Command{
		Use:          "anagrind [input [include [exclude]]]",
		Short:        "anagrind",
		SilenceUsage: true,
		Long: `Interactive multi-word anagram finder. Without arguments a live
terminal UI starts; with arguments a single query is answered on stdout.
The optional second argument holds letters every result must use, the
optional third a space-separated list of words to avoid.`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runLive()
			}

			idx, err := loadIndex(false)
			if err != nil {
				return err
			}

			q := search.Query{Input: args[0]}
			if len(args) > 1 {
				q.Include = args[1]
			}
			if len(args) > 2 {
				q.Exclude = args[2]
			}

			ctx := anagrind.Find(idx, q, search.NoLimit)
			return anagrind.WriteResults(os.Stdout, ctx, q.Include)
		},
	}

	dictPath   string
	allowUpper bool
	logPath    string
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVar(&dictPath, "dict", "", "path to the word list, one word per line (default data/words.txt)")
	rootCmd.PersistentFlags().BoolVar(&allowUpper, "upper", false, "accept words containing uppercase letters")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "append logs to this file")
	return rootCmd.Execute()
}
