// Package cli wires the cobra commands of the offers toolbox.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tate-it/energy-toolbox-sub003/internal/config"
	"github.com/tate-it/energy-toolbox-sub003/internal/engine"
	"github.com/tate-it/energy-toolbox-sub003/internal/offer"
)

// RootCommand assembles the command tree.
func RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "offers",
		Short:         "Validate and export SII commercial offers",
		Long:          "Toolbox for the offer wizard: validates offer snapshots against the SII Trasmissione Offerte v4.5 conditional rules and exports clean records as submission XML.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		ValidateCommand(),
		CheckStepCommand(),
		ExportCommand(),
		FieldsCommand(),
		ServeCommand(),
	)
	return root
}

// newEngine builds the validation engine once per command run. The
// static rule self-check makes this fallible.
func newEngine() (*engine.Engine, error) {
	e, err := engine.New()
	if err != nil {
		return nil, fmt.Errorf("build validation engine: %w", err)
	}
	return e, nil
}

// loadOffer reads an offer snapshot from a file, or stdin when path is "-".
func loadOffer(path string) (*offer.Offer, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read offer: %w", err)
	}
	return offer.Decode(data)
}

// newLogger builds the process logger per configuration.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogJSON {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
