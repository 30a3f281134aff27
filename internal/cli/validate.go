package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tate-it/energy-toolbox-sub003/internal/engine"
	"github.com/tate-it/energy-toolbox-sub003/internal/offer"
)

// errNotClean signals a dirty verdict so main can exit non-zero without
// a second error message.
type errNotClean struct{ problems int }

func (e errNotClean) Error() string {
	return fmt.Sprintf("%d problem(s) found", e.problems)
}

// ValidateCommand creates the validate command.
func ValidateCommand() *cobra.Command {
	var (
		section string
		asJSON  bool
		showAll bool
	)

	cmd := &cobra.Command{
		Use:   "validate <offer.json>",
		Short: "Validate an offer snapshot",
		Long: `Validate an offer snapshot against the SII conditional rules.

Reads the snapshot from the given file, or from stdin when the path
is "-". Exits non-zero when any field is missing or invalid.

Examples:
  # Full-record validation
  offers validate offer.json

  # One section only
  offers validate offer.json --section offerDetails

  # Machine-readable verdict
  offers validate offer.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], section, asJSON, showAll)
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "Validate one section instead of the full record")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the verdict as JSON")
	cmd.Flags().BoolVar(&showAll, "all", false, "Also print ok and not-applicable fields")

	return cmd
}

func runValidate(cmd *cobra.Command, path, section string, asJSON, showAll bool) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	o, err := loadOffer(path)
	if err != nil {
		return err
	}

	scope := engine.FullRecord()
	if section != "" {
		sec, err := resolveSection(section)
		if err != nil {
			return err
		}
		scope = engine.SingleSection(sec)
	}

	verdict := e.Validate(o, scope)

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]any{
			"clean":    verdict.Clean(),
			"fields":   verdict.Ordered(),
			"sections": verdict.Sections,
		}); err != nil {
			return err
		}
	} else {
		printVerdict(cmd, verdict, showAll)
	}

	if problems := countProblems(verdict); problems > 0 {
		return errNotClean{problems: problems}
	}
	return nil
}

func countProblems(verdict engine.Verdict) int {
	n := 0
	for _, r := range verdict.Fields {
		if r.Status == engine.StatusMissing || r.Status == engine.StatusInvalid {
			n++
		}
	}
	return n
}

func printVerdict(cmd *cobra.Command, verdict engine.Verdict, showAll bool) {
	out := cmd.OutOrStdout()
	problems := 0
	for _, r := range verdict.Ordered() {
		switch r.Status {
		case engine.StatusMissing:
			problems++
			fmt.Fprintf(out, "MISSING  %s%s\n", r.Field, entrySuffix(r.Entry))
		case engine.StatusInvalid:
			problems++
			fmt.Fprintf(out, "INVALID  %s%s (%s)\n", r.Field, entrySuffix(r.Entry), r.Reason)
		default:
			if showAll {
				fmt.Fprintf(out, "%-8s %s\n", r.Status, r.Field)
			}
		}
	}
	if problems == 0 {
		fmt.Fprintln(out, "offer is clean")
	}
}

func entrySuffix(entry int) string {
	if entry < 0 {
		return ""
	}
	return fmt.Sprintf(" [entry %d]", entry)
}

func resolveSection(name string) (offer.Section, error) {
	for _, s := range offer.Sections {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown section: %s", name)
}
