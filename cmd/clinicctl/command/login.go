package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pallium-care/console/backend"
)

var loginEmail string
var loginPassword string
var loginVcm bool

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Print a session token",
	Long:  "The login command exchanges staff credentials for a token usable with --token",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(login) },
}

func login(client *backend.Client) error {
	path := backend.AdminLoginPath
	if loginVcm {
		path = backend.VcmLoginPath
	}
	t, err := client.Login(context.Background(), path, backend.Credentials{
		Email:    loginEmail,
		Password: loginPassword,
	})
	if err != nil {
		return err
	}
	fmt.Println(t)
	return nil
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Staff email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Staff password")
	loginCmd.Flags().BoolVar(&loginVcm, "vcm", false, "Log in as a volunteer, caregiver or medical professional")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)
}
