package nutritrack

import (
	"fmt"
	"strings"
	"time"

	"github.com/manu2699/nutri-track/internal/app"
	"github.com/manu2699/nutri-track/internal/catalog"
	"github.com/manu2699/nutri-track/internal/service"
	"github.com/spf13/cobra"
)

var (
	foodFrequentRegion string
	foodFrequentSlot   string
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Browse the food catalog",
}

var foodSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search foods by name or alias",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			matches := a.Catalog.Search(args[0])
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No foods matched.")
				return nil
			}
			for _, f := range matches {
				fmt.Fprintf(cmd.OutOrStdout(), "%-28s %6.1f kcal / %s  [%s]\n",
					f.ItemName, f.Calories, f.Measurement, f.ID)
			}
			return nil
		})
	},
}

var foodShowCmd = &cobra.Command{
	Use:   "show <food-id>",
	Short: "Show a food's reference nutrition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			food := a.Catalog.Lookup(args[0])
			if food == nil {
				return fmt.Errorf("unknown food %q", args[0])
			}
			printFood(cmd, food)
			return nil
		})
	},
}

var foodFrequentCmd = &cobra.Command{
	Use:   "frequent",
	Short: "List frequently eaten foods for a region and meal slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			slot := foodFrequentSlot
			if slot == "" {
				slot = service.ClassifySlot(time.Now())
			}
			names := service.FrequentFoods(a.Catalog, foodFrequentRegion, slot)
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No frequent foods for this region and slot.")
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		})
	},
}

func printFood(cmd *cobra.Command, food *catalog.Food) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", food.ItemName, food.ID)
	fmt.Fprintf(out, "Calories: %.1f per %s\n", food.Calories, food.Measurement)
	if len(food.Region) > 0 {
		fmt.Fprintf(out, "Region: %s\n", strings.Join(food.Region, ", "))
	}
	if len(food.MealTypes) > 0 {
		fmt.Fprintf(out, "Meals: %s\n", strings.Join(food.MealTypes, ", "))
	}
	if food.Description != "" {
		fmt.Fprintf(out, "%s\n", food.Description)
	}
	printNutrient := func(label string, v *float64, unit string) {
		if v == nil {
			return
		}
		fmt.Fprintf(out, "  %-16s %.2f %s\n", label, *v, unit)
	}
	n := food.Nutrients
	if n == nil {
		return
	}
	fmt.Fprintln(out, "Nutrients:")
	printNutrient("Protein", n.Proteins, "g")
	printNutrient("Carbs", n.Carbs, "g")
	printNutrient("Total fat", n.TotalFats, "g")
	printNutrient("Saturated fat", n.SaturatedFats, "g")
	printNutrient("Unsaturated fat", n.UnSaturatedFats, "g")
	printNutrient("Fiber", n.Fiber, "g")
	printNutrient("Sugar", n.Sugar, "g")
	printNutrient("Sodium", n.Sodium, "mg")
	printNutrient("Potassium", n.Potassium, "mg")
	printNutrient("Magnesium", n.Magnesium, "mg")
	printNutrient("Calcium", n.Calcium, "mg")
	printNutrient("Iron", n.Iron, "mg")
	printNutrient("Vitamin A", n.VitaminA, "mcg")
	printNutrient("Vitamin C", n.VitaminC, "mg")
	printNutrient("Vitamin D", n.VitaminD, "mcg")
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodSearchCmd)
	foodCmd.AddCommand(foodShowCmd)
	foodCmd.AddCommand(foodFrequentCmd)
	foodFrequentCmd.Flags().StringVar(&foodFrequentRegion, "region", "south_india", "Frequent-foods region")
	foodFrequentCmd.Flags().StringVar(&foodFrequentSlot, "slot", "", "Meal slot (default from current time)")
}
