package command

import (
	"github.com/spf13/cobra"
)

var schedulesCmd = &cobra.Command{
	Use:   "schedules",
	Short: "Visit schedules",
	Long:  "The schedules command is used to inspect planned home visits",
}

func init() {
	rootCmd.AddCommand(schedulesCmd)
}
