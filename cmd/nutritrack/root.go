package nutritrack

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "nutri-track",
	Short: "nutri-track logs meals and tracks calories and macros against your personal targets",
	Long:  "nutri-track is a local-first nutrition tracker: log foods from the built-in catalog, see daily intake against your computed BMR and protein requirement, and review progress over time.",
}

func Execute() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
