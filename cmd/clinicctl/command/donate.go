package command

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/pallium-care/console/donations"
)

var donateAmount string
var donateDonor string
var donateUserAgent string

var donateCmd = &cobra.Command{
	Use:   "donate",
	Short: "Emergency fund donations",
}

var donateLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Print the UPI links for a donation",
	Long:  "The link command prints the payment links the donation page would open for a browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(service donations.Service) error { return donationLink(cmd.OutOrStdout(), service) })
	},
}

func donationLink(out io.Writer, service donations.Service) error {
	amount, err := service.ParseAmount(donateAmount)
	if err != nil {
		return err
	}
	plan := service.Plan(donateUserAgent, amount, donateDonor)

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(plan)
}

func init() {
	donateLinkCmd.Flags().StringVar(&donateAmount, "amount", "", "Amount in rupees")
	donateLinkCmd.Flags().StringVar(&donateDonor, "donor", "", "Donor name")
	donateLinkCmd.Flags().StringVar(&donateUserAgent, "ua", "", "Browser user agent")
	_ = donateLinkCmd.MarkFlagRequired("amount")
	donateCmd.AddCommand(donateLinkCmd)
	rootCmd.AddCommand(donateCmd)
}
