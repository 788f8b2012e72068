package nutritrack

import (
	"fmt"

	"github.com/manu2699/nutri-track/internal/app"
	"github.com/manu2699/nutri-track/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show and update your profile",
}

var profileUser int64

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show profile and derived targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			profile, err := service.GetProfile(a.DB, profileUser)
			if err != nil {
				return err
			}
			if profile == nil {
				return fmt.Errorf("profile %d not found (run onboard first)", profileUser)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", profile.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Age: %d | Gender: %s | Region: %s\n", profile.Age, profile.Gender, profile.Region)
			fmt.Fprintf(cmd.OutOrStdout(), "Weight: %.1f kg | Height: %.1f cm\n", profile.WeightKg, profile.HeightCm)
			fmt.Fprintf(cmd.OutOrStdout(), "BMI: %.2f (%s) | Body fat: %.2f%%\n", profile.BMI, service.BMICategory(profile.BMI), profile.BodyFatPct)
			fmt.Fprintf(cmd.OutOrStdout(), "Activity: %s\n", profile.ActivityLevel)
			fmt.Fprintf(cmd.OutOrStdout(), "BMR: %d kcal/day | Protein target: %d g/day\n", profile.BMR, profile.ProteinRequiredG)
			return nil
		})
	},
}

var (
	profileSetName     string
	profileSetAge      int
	profileSetEmail    string
	profileSetWeight   float64
	profileSetHeight   float64
	profileSetBodyFat  float64
	profileSetActivity string
	profileSetRegion   string
)

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields; targets recompute when biometrics change",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.UpdateProfileInput{ID: profileUser}
		if cmd.Flags().Changed("name") {
			in.Name = &profileSetName
		}
		if cmd.Flags().Changed("age") {
			in.Age = &profileSetAge
		}
		if cmd.Flags().Changed("email") {
			in.Email = &profileSetEmail
		}
		if cmd.Flags().Changed("weight") {
			in.WeightKg = &profileSetWeight
		}
		if cmd.Flags().Changed("height") {
			in.HeightCm = &profileSetHeight
		}
		if cmd.Flags().Changed("body-fat") {
			in.BodyFatPct = &profileSetBodyFat
		}
		if cmd.Flags().Changed("activity") {
			in.ActivityLevel = &profileSetActivity
		}
		if cmd.Flags().Changed("region") {
			in.Region = &profileSetRegion
		}
		return withApp(func(a *app.App) error {
			if err := service.UpdateProfile(a.DB, in); err != nil {
				return err
			}
			profile, err := service.GetProfile(a.DB, profileUser)
			if err != nil {
				return err
			}
			a.Log.Info("profile updated",
				zap.Int64("user", profileUser),
				zap.Int("bmr", profile.BMR),
				zap.Int("protein_g", profile.ProteinRequiredG))
			fmt.Fprintf(cmd.OutOrStdout(), "Updated profile %d\n", profileUser)
			fmt.Fprintf(cmd.OutOrStdout(), "BMR: %d kcal/day | Protein target: %d g/day\n", profile.BMR, profile.ProteinRequiredG)
			return nil
		})
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a profile and all of its trackings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			if err := service.DeleteProfile(a.DB, profileUser); err != nil {
				return err
			}
			a.Log.Info("profile deleted", zap.Int64("user", profileUser))
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %d\n", profileUser)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.PersistentFlags().Int64Var(&profileUser, "user", 1, "User id")
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileCmd.AddCommand(profileDeleteCmd)

	profileUpdateCmd.Flags().StringVar(&profileSetName, "name", "", "New name")
	profileUpdateCmd.Flags().IntVar(&profileSetAge, "age", 0, "New age")
	profileUpdateCmd.Flags().StringVar(&profileSetEmail, "email", "", "New email")
	profileUpdateCmd.Flags().Float64Var(&profileSetWeight, "weight", 0, "New weight in kg")
	profileUpdateCmd.Flags().Float64Var(&profileSetHeight, "height", 0, "New height in cm")
	profileUpdateCmd.Flags().Float64Var(&profileSetBodyFat, "body-fat", 0, "New body fat percent")
	profileUpdateCmd.Flags().StringVar(&profileSetActivity, "activity", "", "New activity level")
	profileUpdateCmd.Flags().StringVar(&profileSetRegion, "region", "", "New region")
}
