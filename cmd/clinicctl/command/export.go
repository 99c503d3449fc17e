package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pallium-care/console/donations"
	"github.com/pallium-care/console/equipment"
	"github.com/pallium-care/console/patients"
	"github.com/pallium-care/console/reports"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:       "export <patients|equipment|emergency-fund>",
	Short:     "Export a registry as a spreadsheet",
	Long:      "The export command writes the same xlsx report the console offers for download",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"patients", "equipment", "emergency-fund"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(p patients.Service, e equipment.Service, d donations.Service) error {
			return exportRegistry(args[0], p, e, d)
		})
	},
}

func exportRegistry(name string, p patients.Service, e equipment.Service, d donations.Service) error {
	ctx, err := sessionContext()
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = reports.Filename(name, time.Now())
	}
	file, err := os.Create(out)
	if err != nil {
		return err
	}
	defer file.Close()

	var count int
	switch name {
	case "patients":
		count, err = writeReport(ctx, file, reports.Patients, p.List)
	case "equipment":
		count, err = writeReport(ctx, file, reports.Equipment, e.List)
	case "emergency-fund":
		count, err = writeReport(ctx, file, reports.EmergencyFund, d.Recent)
	default:
		err = fmt.Errorf("unknown registry %q", name)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported %v records to %s\n", count, out)
	return nil
}

func writeReport[T any](ctx context.Context, file *os.File, report reports.Report[T], list func(context.Context) ([]T, error)) (int, error) {
	records, err := list(ctx)
	if err != nil {
		return 0, err
	}
	return len(records), report.Write(file, records)
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file, defaults to <registry>-<date>.xlsx")
	rootCmd.AddCommand(exportCmd)
}
