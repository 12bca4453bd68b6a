package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"appointment-finder/internal/domain/location"
	resdto "appointment-finder/internal/handler/dto/response"
)

var locationsCmd = &cobra.Command{
	Use:   "locations [postal-code]",
	Short: "List the locations registered under a postal code",
	Args:  cobra.ExactArgs(1),
	RunE:  runLocations,
}

var postalCodesCmd = &cobra.Command{
	Use:   "postal-codes [location-id]",
	Short: "List the postal codes a location is registered under",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostalCodes,
}

func init() {
	rootCmd.AddCommand(locationsCmd)
	rootCmd.AddCommand(postalCodesCmd)
}

func runLocations(cmd *cobra.Command, args []string) error {
	if locationService == nil {
		return errors.New("location service not configured")
	}
	code, err := location.ParsePostalCode(args[0])
	if err != nil {
		return err
	}
	ids := locationService.LocationsByPostalCode(cmd.Context(), code)
	return writeJSON(cmd.OutOrStdout(), resdto.FromLocationIDs(code, ids))
}

func runPostalCodes(cmd *cobra.Command, args []string) error {
	if locationService == nil {
		return errors.New("location service not configured")
	}
	id, err := location.NewLocationID(args[0])
	if err != nil {
		return err
	}
	codes := locationService.PostalCodesByLocation(cmd.Context(), id)
	return writeJSON(cmd.OutOrStdout(), resdto.FromPostalCodes(id, codes))
}
