package nutritrack

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v\n%s", args, err, buf.String())
	}
	return buf.String()
}

func TestRootHelp(t *testing.T) {
	out := runCommand(t, "--help")
	if out == "" {
		t.Fatal("expected help output")
	}
	for _, sub := range []string{"onboard", "track", "day", "food", "progress"} {
		if !strings.Contains(out, sub) {
			t.Fatalf("help should mention %q:\n%s", sub, out)
		}
	}
}

func TestOnboardTrackDayFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nutritrack.db")

	out := runCommand(t, "--db", path, "onboard",
		"--name", "Manu",
		"--age", "27",
		"--gender", "male",
		"--weight", "79",
		"--height", "174",
		"--body-fat", "23",
		"--activity", "lightly active",
		"--region", "south_india",
	)
	if !strings.Contains(out, "BMR: 1684 kcal/day") {
		t.Fatalf("onboard should report the computed BMR:\n%s", out)
	}
	if !strings.Contains(out, "Protein target: 84 g/day") {
		t.Fatalf("onboard should report the protein target:\n%s", out)
	}

	out = runCommand(t, "--db", path, "track", "add",
		"--food", "chicken_breast_grilled",
		"--quantity", "250",
		"--date", "2026-08-20",
		"--time", "13:00",
	)
	if !strings.Contains(out, "entry 1") {
		t.Fatalf("track add should report the new entry id:\n%s", out)
	}

	out = runCommand(t, "--db", path, "day", "--date", "2026-08-20")
	if !strings.Contains(out, "lunch") {
		t.Fatalf("day should group the entry under lunch:\n%s", out)
	}
	if !strings.Contains(out, "Total: 412 kcal") {
		t.Fatalf("day should total the floored snapshot calories:\n%s", out)
	}

	out = runCommand(t, "--db", path, "track", "list")
	if !strings.Contains(out, "Grilled Chicken Breast") {
		t.Fatalf("track list should resolve catalog names:\n%s", out)
	}
}

func TestFoodSearchCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nutritrack.db")

	out := runCommand(t, "--db", path, "food", "search", "dosa")
	if !strings.Contains(out, "Plain Dosa") {
		t.Fatalf("search should find the dosa entry:\n%s", out)
	}

	out = runCommand(t, "--db", path, "food", "frequent", "--region", "south_india", "--slot", "breakfast")
	if !strings.Contains(out, "Idli") {
		t.Fatalf("frequent should list south indian breakfasts:\n%s", out)
	}
}
