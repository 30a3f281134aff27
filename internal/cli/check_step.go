package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tate-it/energy-toolbox-sub003/internal/wizard"
)

// CheckStepCommand creates the check-step command.
func CheckStepCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check-step <step> <offer.json>",
		Short: "Check whether a wizard step can be advanced past",
		Long: `Run the step gate for one wizard step against an offer snapshot.

Steps are numbered 1 to 18 in wizard order; "offers fields" lists the
section each step edits. Exits non-zero when the step blocks.

Examples:
  offers check-step 2 offer.json
  offers check-step 12 offer.json --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			step, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("step must be a number 1-%d: %q", wizard.StepCount, args[0])
			}
			return runCheckStep(cmd, wizard.Step(step), args[1], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the gate as JSON")

	return cmd
}

func runCheckStep(cmd *cobra.Command, step wizard.Step, path string, asJSON bool) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	o, err := loadOffer(path)
	if err != nil {
		return err
	}

	gate, err := wizard.CanAdvance(e, o, step)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(gate); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(out, "step %d (%s)\n", gate.Step, gate.Section)
		for _, r := range gate.BlockingErrors {
			fmt.Fprintf(out, "BLOCKING %s%s %s\n", r.Field, entrySuffix(r.Entry), r.Reason)
		}
		for _, r := range gate.Warnings {
			fmt.Fprintf(out, "WARNING  %s%s %s\n", r.Field, entrySuffix(r.Entry), r.Reason)
		}
		if gate.Allowed {
			fmt.Fprintln(out, "step can be advanced")
		}
	}

	if !gate.Allowed {
		return errNotClean{problems: len(gate.BlockingErrors)}
	}
	return nil
}
