package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"appointment-finder/internal/domain/geo"
	resdto "appointment-finder/internal/handler/dto/response"
)

var (
	nextLat   float64
	nextLng   float64
	nextKey   string
	nextHuman bool
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Print the earliest appointments near a coordinate",
	Long: `Prints {"appointments": [...]} with every location tied for the earliest
available slot. Times are epoch milliseconds. Locations that returned no slot
or failed are reported as warnings on stderr.`,
	Args: cobra.NoArgs,
	RunE: runNext,
}

func init() {
	nextCmd.Flags().Float64Var(&nextLat, "lat", 0, "latitude in decimal degrees")
	nextCmd.Flags().Float64Var(&nextLng, "lng", 0, "longitude in decimal degrees")
	nextCmd.Flags().StringVar(&nextKey, "key", "", "geocoding api key (prompted when required and missing)")
	nextCmd.Flags().BoolVar(&nextHuman, "human", false, "also print RFC3339 times on stderr")
	_ = nextCmd.MarkFlagRequired("lat")
	_ = nextCmd.MarkFlagRequired("lng")
	rootCmd.AddCommand(nextCmd)
}

func runNext(cmd *cobra.Command, _ []string) error {
	if finderService == nil {
		return errors.New("finder service not configured")
	}

	coord, err := geo.NewCoordinate(nextLat, nextLng)
	if err != nil {
		return err
	}

	key := nextKey
	if key == "" && finderService.RequiresCredential() {
		if key, err = promptKey(cmd); err != nil {
			return err
		}
	}

	result, err := finderService.FindEarliest(cmd.Context(), coord, key)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	res, err := resdto.FromRecords(result.Appointments)
	if err != nil {
		return err
	}
	if err := writeJSON(cmd.OutOrStdout(), res); err != nil {
		return err
	}

	if nextHuman {
		for _, a := range res.Appointments {
			t := time.UnixMilli(a.AppointmentTime).UTC().Format(time.RFC3339)
			fmt.Fprintf(cmd.ErrOrStderr(), "%s\t%s\n", a.LocationID, t)
		}
	}
	return nil
}
