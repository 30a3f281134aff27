package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tate-it/energy-toolbox-sub003/internal/sii"
)

// ExportCommand creates the export command.
func ExportCommand() *cobra.Command {
	var (
		outDir      string
		description string
		stdout      bool
	)

	cmd := &cobra.Command{
		Use:   "export <offer.json>",
		Short: "Export a clean offer as SII submission XML",
		Long: `Validate the full record and, when clean, write the submission XML.

The file is named <PIVA>_INSERIMENTO_<DESCRIPTION>.XML as the SII
expects. A dirty record is refused and the blocking fields printed.

Examples:
  offers export offer.json --out ./submissions
  offers export offer.json --description SUMMER2026
  offers export offer.json --stdout > offer.xml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], outDir, description, stdout)
		},
	}

	cmd.Flags().StringVar(&outDir, "out", ".", "Directory the XML file is written to")
	cmd.Flags().StringVar(&description, "description", "", "File name description part (defaults to the offer code)")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Write the XML to stdout instead of a file")

	return cmd
}

func runExport(cmd *cobra.Command, path, outDir, description string, stdout bool) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	o, err := loadOffer(path)
	if err != nil {
		return err
	}

	out, verdict, err := sii.Export(e, o)
	if errors.Is(err, sii.ErrNotExportable) {
		printVerdict(cmd, verdict, false)
		return err
	}
	if err != nil {
		return err
	}

	if stdout {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}

	name := sii.FileName(o, description)
	target := filepath.Join(outDir, name)
	if err := os.WriteFile(target, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), target)
	return nil
}
