package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/doublescale/anagrind/tui"
)

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Start the interactive finder (the default)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLive()
	},
}

func runLive() error {
	idx, err := loadIndex(true)
	if err != nil {
		return err
	}
	return tui.Run(idx, logrus.StandardLogger())
}

func init() {
	rootCmd.AddCommand(liveCmd)
}
