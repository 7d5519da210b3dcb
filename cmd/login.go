package cmd

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/arjun/opsdesk/internal/output"
	"github.com/arjun/opsdesk/internal/session"
)

var errFieldRequired = errors.New("this field is required")

var loginCmd = &cobra.Command{
	Use:     "login",
	Short:   "Store admin API credentials for this machine",
	GroupID: "session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ownerID, _ := cmd.Flags().GetString("owner-id")
		token, _ := cmd.Flags().GetString("token")
		operator, _ := cmd.Flags().GetString("operator")

		// Prompt for anything not passed as a flag
		if ownerID == "" || token == "" {
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Owner id").
						Value(&ownerID).
						Validate(requireValue),
					huh.NewInput().
						Title("API token").
						Value(&token).
						EchoMode(huh.EchoModePassword).
						Validate(requireValue),
					huh.NewInput().
						Title("Operator name (optional)").
						Value(&operator),
				),
			)
			if err := form.Run(); err != nil {
				return err
			}
		}

		creds := &session.Credentials{
			OwnerID:  strings.TrimSpace(ownerID),
			Token:    strings.TrimSpace(token),
			Operator: strings.TrimSpace(operator),
		}
		if err := session.SaveCredentials(creds); err != nil {
			output.Error("%v", err)
			return err
		}

		output.Success("Logged in as owner %s", creds.OwnerID)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:     "logout",
	Short:   "Remove stored credentials",
	GroupID: "session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := session.ClearCredentials(); err != nil {
			output.Error("%v", err)
			return err
		}
		output.Success("Logged out")
		return nil
	},
}

func requireValue(s string) error {
	if strings.TrimSpace(s) == "" {
		return errFieldRequired
	}
	return nil
}

func init() {
	loginCmd.Flags().String("owner-id", "", "owner id for the admin API")
	loginCmd.Flags().String("token", "", "bearer token for the admin API")
	loginCmd.Flags().String("operator", "", "operator display name")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
