package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tate-it/energy-toolbox-sub003/internal/catalog"
	"github.com/tate-it/energy-toolbox-sub003/internal/wizard"
)

// FieldsCommand creates the fields command.
func FieldsCommand() *cobra.Command {
	var (
		section string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the offer field catalog",
		Long: `List every field the validator knows, with its section, type and
enumerated codes. Useful when building form payloads by hand.

Examples:
  offers fields
  offers fields --section priceType
  offers fields --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFields(cmd, section, asJSON)
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "Limit to one section")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the catalog as JSON")

	return cmd
}

func runFields(cmd *cobra.Command, section string, asJSON bool) error {
	shapes := catalog.All()
	if section != "" {
		sec, err := resolveSection(section)
		if err != nil {
			return err
		}
		shapes = catalog.BySection(sec)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		type entry struct {
			ID       catalog.FieldID `json:"id"`
			Kind     catalog.Kind    `json:"kind"`
			Repeated bool            `json:"repeated"`
			Enum     []string        `json:"enum,omitempty"`
		}
		list := make([]entry, 0, len(shapes))
		for _, s := range shapes {
			list = append(list, entry{ID: s.ID, Kind: s.Kind, Repeated: s.Repeated, Enum: s.Enum})
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	var lastSection string
	for _, s := range shapes {
		if string(s.Section) != lastSection {
			lastSection = string(s.Section)
			fmt.Fprintf(out, "\n[step %d] %s\n", stepOf(lastSection), lastSection)
		}
		line := fmt.Sprintf("  %-55s %s", s.ID, s.Kind)
		if s.Repeated {
			line += " (repeated)"
		}
		if len(s.Enum) > 0 {
			line += " {" + strings.Join(s.Enum, ",") + "}"
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

func stepOf(section string) int {
	for s := wizard.Step(1); s <= wizard.StepCount; s++ {
		sec, _ := wizard.SectionFor(s)
		if string(sec) == section {
			return int(s)
		}
	}
	return 0
}
