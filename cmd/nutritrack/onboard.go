package nutritrack

import (
	"fmt"

	"github.com/manu2699/nutri-track/internal/app"
	"github.com/manu2699/nutri-track/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	onboardName     string
	onboardAge      int
	onboardEmail    string
	onboardGender   string
	onboardWeight   float64
	onboardHeight   float64
	onboardBodyFat  float64
	onboardActivity string
	onboardRegion   string
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Create your profile and compute personal daily targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.CreateProfileInput{
			Name:          onboardName,
			Age:           onboardAge,
			Email:         onboardEmail,
			Gender:        onboardGender,
			WeightKg:      onboardWeight,
			HeightCm:      onboardHeight,
			BodyFatPct:    optionalPct(onboardBodyFat),
			ActivityLevel: onboardActivity,
			Region:        onboardRegion,
		}
		return withApp(func(a *app.App) error {
			id, err := service.CreateProfile(a.DB, in)
			if err != nil {
				return err
			}
			profile, err := service.GetProfile(a.DB, id)
			if err != nil {
				return err
			}
			a.Log.Info("profile created",
				zap.Int64("user", id),
				zap.Int("bmr", profile.BMR),
				zap.Int("protein_g", profile.ProteinRequiredG))
			fmt.Fprintf(cmd.OutOrStdout(), "Created profile %d for %s\n", id, profile.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "BMI: %.2f (%s)\n", profile.BMI, service.BMICategory(profile.BMI))
			fmt.Fprintf(cmd.OutOrStdout(), "Body fat: %.2f%%\n", profile.BodyFatPct)
			fmt.Fprintf(cmd.OutOrStdout(), "BMR: %d kcal/day\n", profile.BMR)
			fmt.Fprintf(cmd.OutOrStdout(), "Protein target: %d g/day\n", profile.ProteinRequiredG)
			return nil
		})
	},
}

// optionalPct treats the flag's zero value as "not provided" so body fat can
// be estimated from BMI when the user does not know it.
func optionalPct(v float64) *float64 {
	if v <= 0 {
		return nil
	}
	return &v
}

func init() {
	rootCmd.AddCommand(onboardCmd)
	onboardCmd.Flags().StringVar(&onboardName, "name", "", "Your name")
	onboardCmd.Flags().IntVar(&onboardAge, "age", 0, "Age in years")
	onboardCmd.Flags().StringVar(&onboardEmail, "email", "", "Email address")
	onboardCmd.Flags().StringVar(&onboardGender, "gender", "", "Gender (male or female)")
	onboardCmd.Flags().Float64Var(&onboardWeight, "weight", 0, "Weight in kg")
	onboardCmd.Flags().Float64Var(&onboardHeight, "height", 0, "Height in cm")
	onboardCmd.Flags().Float64Var(&onboardBodyFat, "body-fat", 0, "Body fat percent (estimated from BMI when omitted)")
	onboardCmd.Flags().StringVar(&onboardActivity, "activity", "sedentary", "Activity level (sedentary, lightly active, moderately active, active, very active)")
	onboardCmd.Flags().StringVar(&onboardRegion, "region", "", "Region for food suggestions (e.g. south_india)")
	_ = onboardCmd.MarkFlagRequired("name")
	_ = onboardCmd.MarkFlagRequired("age")
	_ = onboardCmd.MarkFlagRequired("gender")
	_ = onboardCmd.MarkFlagRequired("weight")
	_ = onboardCmd.MarkFlagRequired("height")
}
