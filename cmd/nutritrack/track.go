package nutritrack

import (
	"fmt"
	"time"

	"github.com/manu2699/nutri-track/internal/app"
	"github.com/manu2699/nutri-track/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Log, list, edit and delete food trackings",
}

var (
	trackUser     int64
	trackFoodID   string
	trackQuantity float64
	trackSlot     string
	trackDate     string
	trackTime     string
)

var trackAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a food intake",
	Long:  "Log a consumed quantity of a catalog food. The quantity is in the food's reference unit: grams/millilitres for foods measured per 100, count for piece or spoon servings.",
	RunE: func(cmd *cobra.Command, args []string) error {
		eatenAt, err := parseDateTimeOrNow(trackDate, trackTime)
		if err != nil {
			return err
		}
		in := service.TrackFoodInput{
			UserID:   trackUser,
			FoodID:   trackFoodID,
			Quantity: trackQuantity,
			MealSlot: trackSlot,
			EatenAt:  eatenAt,
		}
		return withApp(func(a *app.App) error {
			id, err := service.TrackFood(a.DB, a.Catalog, in)
			if err != nil {
				return err
			}
			a.Log.Info("tracked food",
				zap.Int64("entry", id),
				zap.Int64("user", in.UserID),
				zap.String("food", in.FoodID),
				zap.Float64("quantity", in.Quantity))
			fmt.Fprintf(cmd.OutOrStdout(), "Tracked %s (%g) as entry %d\n", in.FoodID, in.Quantity, id)
			return nil
		})
	},
}

var (
	trackListDate string
	trackListFrom string
	trackListTo   string
	trackListSlot string
	trackLimit    int
)

var trackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trackings",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := service.TrackingFilter{
			Date:     trackListDate,
			FromDate: trackListFrom,
			ToDate:   trackListTo,
			Slot:     trackListSlot,
			Limit:    trackLimit,
		}
		return withApp(func(a *app.App) error {
			entries, err := service.ListTrackings(a.DB, trackUser, filter)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTIME\tSLOT\tFOOD\tQTY\tKCAL\tP(g)\tC(g)\tF(g)")
			for _, e := range entries {
				name := e.FoodID
				if food := a.Catalog.Lookup(e.FoodID); food != nil {
					name = food.ItemName
				} else if e.FoodID == "" {
					name = "(water)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%g\t%.0f\t%.1f\t%.1f\t%.1f\n",
					e.ID, e.EatenAt.Local().Format("2006-01-02 15:04"), e.MealSlot, name, e.Consumed, e.Calories, e.ProteinG, e.CarbsG, e.FatG)
			}
			return nil
		})
	},
}

var trackUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change a tracking's quantity, slot or time; values re-scale from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("tracking id", args[0])
		if err != nil {
			return err
		}
		var eatenAt time.Time
		if trackDate != "" || trackTime != "" {
			eatenAt, err = parseDateTimeOrNow(trackDate, trackTime)
			if err != nil {
				return err
			}
		}
		in := service.UpdateTrackingInput{
			ID:       id,
			Quantity: trackQuantity,
			MealSlot: trackSlot,
			EatenAt:  eatenAt,
		}
		return withApp(func(a *app.App) error {
			if err := service.UpdateTracking(a.DB, a.Catalog, in); err != nil {
				return err
			}
			a.Log.Info("updated tracking", zap.Int64("entry", id), zap.Float64("quantity", in.Quantity))
			fmt.Fprintf(cmd.OutOrStdout(), "Updated tracking %d\n", id)
			return nil
		})
	},
}

var trackDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a tracking",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("tracking id", args[0])
		if err != nil {
			return err
		}
		return withApp(func(a *app.App) error {
			if err := service.DeleteTracking(a.DB, id); err != nil {
				return err
			}
			a.Log.Info("deleted tracking", zap.Int64("entry", id))
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted tracking %d\n", id)
			return nil
		})
	},
}

var trackWaterMl float64

var trackWaterCmd = &cobra.Command{
	Use:   "water",
	Short: "Log water intake in millilitres",
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := parseDateTimeOrNow(trackDate, trackTime)
		if err != nil {
			return err
		}
		return withApp(func(a *app.App) error {
			id, err := service.AddWater(a.DB, trackUser, trackWaterMl, at)
			if err != nil {
				return err
			}
			a.Log.Info("logged water", zap.Int64("entry", id), zap.Int64("user", trackUser), zap.Float64("ml", trackWaterMl))
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %g ml water as entry %d\n", trackWaterMl, id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(trackCmd)
	trackCmd.PersistentFlags().Int64Var(&trackUser, "user", 1, "User id")
	trackCmd.AddCommand(trackAddCmd)
	trackCmd.AddCommand(trackListCmd)
	trackCmd.AddCommand(trackUpdateCmd)
	trackCmd.AddCommand(trackDeleteCmd)
	trackCmd.AddCommand(trackWaterCmd)

	trackAddCmd.Flags().StringVar(&trackFoodID, "food", "", "Catalog food id (see food search)")
	trackAddCmd.Flags().Float64Var(&trackQuantity, "quantity", 0, "Consumed quantity in the food's reference unit")
	trackAddCmd.Flags().StringVar(&trackSlot, "slot", "", "Meal slot (default from the time of day)")
	trackAddCmd.Flags().StringVar(&trackDate, "date", "", "Date YYYY-MM-DD (default today)")
	trackAddCmd.Flags().StringVar(&trackTime, "time", "", "Time HH:MM (default now)")
	_ = trackAddCmd.MarkFlagRequired("food")
	_ = trackAddCmd.MarkFlagRequired("quantity")

	trackListCmd.Flags().StringVar(&trackListDate, "date", "", "Single day YYYY-MM-DD")
	trackListCmd.Flags().StringVar(&trackListFrom, "from", "", "Range start YYYY-MM-DD")
	trackListCmd.Flags().StringVar(&trackListTo, "to", "", "Range end YYYY-MM-DD")
	trackListCmd.Flags().StringVar(&trackListSlot, "slot", "", "Filter by meal slot")
	trackListCmd.Flags().IntVar(&trackLimit, "limit", 50, "Max rows")

	trackUpdateCmd.Flags().Float64Var(&trackQuantity, "quantity", 0, "New consumed quantity")
	trackUpdateCmd.Flags().StringVar(&trackSlot, "slot", "", "New meal slot")
	trackUpdateCmd.Flags().StringVar(&trackDate, "date", "", "New date YYYY-MM-DD")
	trackUpdateCmd.Flags().StringVar(&trackTime, "time", "", "New time HH:MM")
	_ = trackUpdateCmd.MarkFlagRequired("quantity")

	trackWaterCmd.Flags().Float64Var(&trackWaterMl, "ml", 0, "Millilitres of water")
	trackWaterCmd.Flags().StringVar(&trackDate, "date", "", "Date YYYY-MM-DD (default today)")
	trackWaterCmd.Flags().StringVar(&trackTime, "time", "", "Time HH:MM (default now)")
	_ = trackWaterCmd.MarkFlagRequired("ml")
}
