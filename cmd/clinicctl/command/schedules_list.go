package command

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/pallium-care/console/schedules"
)

var scheduleMode string

var schedulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List upcoming visits",
	Long:  "The list command prints the visits of today, this week or all of them",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(service schedules.Service) error { return listSchedules(cmd.OutOrStdout(), service) })
	},
}

func listSchedules(out io.Writer, service schedules.Service) error {
	ctx, err := sessionContext()
	if err != nil {
		return err
	}
	list, err := service.Upcoming(ctx, schedules.ParseMode(scheduleMode), time.Now())
	if err != nil {
		return err
	}

	for _, s := range list {
		fmt.Fprintf(out, "%s %s %s with %s\n", s.DisplayDate(), s.VisitTime, s.PatientName, s.MemberName)
	}
	fmt.Fprintf(out, "Found %v visits\n", len(list))

	return nil
}

func init() {
	schedulesListCmd.Flags().StringVar(&scheduleMode, "mode", string(schedules.All), "One of all, today or week")
	schedulesCmd.AddCommand(schedulesListCmd)
}
