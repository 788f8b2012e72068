package nutritrack

import (
	"fmt"
	"time"

	"github.com/manu2699/nutri-track/internal/app"
	"github.com/manu2699/nutri-track/internal/service"
	"github.com/spf13/cobra"
)

var (
	progressUser int64
	progressFrom string
	progressTo   string
	progressDays int
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show per-day totals across a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		var from, to time.Time
		var err error
		if progressFrom != "" || progressTo != "" {
			if progressFrom == "" || progressTo == "" {
				return fmt.Errorf("--from and --to must be given together")
			}
			from, err = time.ParseInLocation("2006-01-02", progressFrom, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --from date: %w", err)
			}
			to, err = time.ParseInLocation("2006-01-02", progressTo, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --to date: %w", err)
			}
		} else {
			to = time.Now()
			from = to.AddDate(0, 0, -(progressDays - 1))
		}

		return withApp(func(a *app.App) error {
			records, err := service.ProgressReport(a.DB, progressUser, from, to)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tracked intake in this range.")
				return nil
			}
			for _, rec := range records {
				total := rec.Aggregate.Total
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %4.0f kcal | P %5.1fg | F %5.1fg | Fiber %5.1fg | %d entries\n",
					rec.Date, total.Calories, total.ProteinG, total.FatG, total.FiberG, len(rec.Entries))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.Flags().Int64Var(&progressUser, "user", 1, "User id")
	progressCmd.Flags().StringVar(&progressFrom, "from", "", "Range start YYYY-MM-DD")
	progressCmd.Flags().StringVar(&progressTo, "to", "", "Range end YYYY-MM-DD")
	progressCmd.Flags().IntVar(&progressDays, "days", 7, "Trailing days when no range is given")
}
