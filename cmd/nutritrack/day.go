package nutritrack

import (
	"fmt"

	"github.com/manu2699/nutri-track/internal/app"
	"github.com/manu2699/nutri-track/internal/service"
	"github.com/spf13/cobra"
)

var (
	dayUser int64
	dayDate string
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Show a day's intake per meal slot against your targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := parseDateOrToday(dayDate)
		if err != nil {
			return err
		}
		return withApp(func(a *app.App) error {
			status, err := service.DaySummary(a.DB, dayUser, target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", status.Date)
			for _, slot := range service.MealSlots() {
				totals, ok := status.Aggregate.BySlot[slot]
				if !ok {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %.0f kcal | P %.1fg | F %.1fg | Fiber %.1fg\n",
					slot, totals.Calories, totals.ProteinG, totals.FatG, totals.FiberG)
			}
			total := status.Aggregate.Total
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %.0f kcal | P %.1fg | F %.1fg | Fiber %.1fg\n",
				total.Calories, total.ProteinG, total.FatG, total.FiberG)
			if status.WaterMl > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Water: %.0f ml\n", status.WaterMl)
			}
			if status.HasTargets {
				fmt.Fprintf(cmd.OutOrStdout(), "Targets: %d kcal | P %dg\n", status.TargetCalories, status.TargetProteinG)
				fmt.Fprintf(cmd.OutOrStdout(), "Remaining: %.0f kcal | P %.1fg\n", status.RemainingCalories, status.RemainingProteinG)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Targets: not set (run onboard)")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(dayCmd)
	dayCmd.Flags().Int64Var(&dayUser, "user", 1, "User id")
	dayCmd.Flags().StringVar(&dayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
