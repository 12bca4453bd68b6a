// Package cli is the command-line entry point of the appointment finder.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"appointment-finder/internal/usecase"
)

// Services are injected by cmd/finder before Execute.
var (
	finderService   usecase.FinderUseCase
	locationService usecase.LocationUseCase
)

// promptKey asks the operator for a geocoding key. Tests replace it.
var promptKey = readAPIKey

var rootCmd = &cobra.Command{
	Use:   "finder",
	Short: "Find the earliest medical appointment near a coordinate",
	Long: `finder reverse geocodes a latitude/longitude to a postal code, looks up the
provider locations registered under it and asks the scheduling service for
each location's next available slot. The locations tied for the earliest
slot are printed as JSON.`,
	SilenceUsage: true,
}

// SetServices wires the usecases the commands run against.
func SetServices(finder usecase.FinderUseCase, locations usecase.LocationUseCase) {
	finderService = finder
	locationService = locations
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func readAPIKey(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), "Input google geocode api key: ")

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		key, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("failed to read api key: %w", err)
		}
		return strings.TrimSpace(string(key)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read api key: %w", err)
	}
	return strings.TrimSpace(line), nil
}
