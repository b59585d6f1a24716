package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/carga/internal/app"
	"github.com/alexanderramin/carga/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newPERCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "per",
		Short: "Compute the PER of every session",
	}
	cmd.AddCommand(newPERRecomputeCmd(app))
	return cmd
}

func newPERRecomputeCmd(a *App) *cobra.Command {
	var yes, dryRun bool

	cmd := &cobra.Command{
		Use:   "recompute",
		Short: "Recompute standard sizes and write the PER of every session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !dryRun && !yes {
				if !a.isInteractive() {
					return fmt.Errorf("recompute overwrites stored PER values; pass --yes to confirm or --dry-run to preview")
				}
				confirmed := false
				form := confirmForm("Recompute PER for every session?",
					"Stored PER values are overwritten.", &confirmed)
				if err := a.runForm(form); err != nil && !errors.Is(err, huh.ErrUserAborted) {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			resp, err := a.recomputePERUseCase().RecomputePER(cmd.Context(), app.PERRequest{DryRun: dryRun})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPER(resp))
			if n := len(resp.Failures); n > 0 {
				return fmt.Errorf("%d of %d PER writes failed", n, resp.Updated+n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the new PER values without writing them")
	return cmd
}
