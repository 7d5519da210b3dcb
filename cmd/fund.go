package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/arjun/opsdesk/internal/adminapi"
	"github.com/arjun/opsdesk/internal/output"
)

var fundCmd = &cobra.Command{
	Use:     "fund",
	Short:   "Initiate a vendor fund transfer",
	GroupID: "vendors",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		vendors, err := client.VendorList()
		if err != nil {
			output.Error("%v", err)
			return err
		}
		if len(vendors) == 0 {
			output.Error("no vendors registered")
			return fmt.Errorf("no vendors registered")
		}

		vendorOptions := make([]huh.Option[int64], 0, len(vendors))
		for _, v := range vendors {
			vendorOptions = append(vendorOptions, huh.NewOption(
				fmt.Sprintf("%s (%d)", v.VendorName, v.OwnerID), v.OwnerID))
		}

		var (
			vendorID  int64
			bank      string
			amount    string
			refNumber string
		)

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[int64]().
					Title("Vendor").
					Options(vendorOptions...).
					Value(&vendorID),
				huh.NewInput().
					Title("Bank").
					Value(&bank).
					Validate(requireValue),
				huh.NewInput().
					Title("Amount").
					Value(&amount).
					Validate(func(s string) error {
						if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
							return fmt.Errorf("amount must be a number")
						}
						return nil
					}),
				huh.NewInput().
					Title("Reference number").
					Value(&refNumber).
					Validate(requireValue),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}

		init := adminapi.FundInitiation{
			VendorID:  vendorID,
			Bank:      strings.TrimSpace(bank),
			Amount:    strings.TrimSpace(amount),
			Date:      time.Now().Format("2006-01-02"),
			RefNumber: strings.TrimSpace(refNumber),
		}
		if err := client.InitiateFund(init); err != nil {
			output.Error("%v", err)
			return err
		}

		log := openAuditLog()
		if log != nil {
			log.RecordAction("fund", "vendor/"+strconv.FormatInt(vendorID, 10), "success", init.RefNumber)
			log.Close()
		}

		output.Success("Fund transfer initiated for vendor %d", vendorID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fundCmd)
}
