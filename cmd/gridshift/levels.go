package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridshift/internal/levels/formats"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Inspect level packs",
	Long: `List or validate level files. Without --levels the built-in pack is used.

Examples:
  gridshift levels list
  gridshift levels show intro
  gridshift levels validate --levels ./my-levels`,
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every level in the pack",
	Run:   runLevelsList,
}

var levelsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every level file and report the broken ones",
	Run:   runLevelsValidate,
}

var levelsShowCmd = &cobra.Command{
	Use:   "show <level-id>",
	Short: "Print one level as YAML",
	Args:  cobra.ExactArgs(1),
	Run:   runLevelsShow,
}

func init() {
	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsShowCmd)
	levelsCmd.AddCommand(levelsValidateCmd)
}

func cliLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Prefix: "gridshift"})
}

func runLevelsList(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lvls, err := levelLoader(cfg, cliLogger()).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	maxIDLen := 2
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %-24s  %-7s  %-4s  %s\n", maxIDLen, "ID", "Name", "Enemies", "Time", "Source")
	fmt.Printf("  %-*s  %-24s  %-7s  %-4s  %s\n", maxIDLen, "--", "----", "-------", "----", "------")
	for _, l := range lvls {
		limit := "-"
		if l.TimeLimit > 0 {
			limit = fmt.Sprintf("%ds", l.TimeLimit)
		}
		source := l.FilePath
		if flagLevels == "" {
			source = "built-in"
		}
		fmt.Printf("  %-*s  %-24s  %-7d  %-4s  %s\n", maxIDLen, l.ID, l.Name, len(l.Enemies), limit, source)
	}

	fmt.Println()
	fmt.Printf("%d levels on a %dx%d board\n", len(lvls), cfg.Grid.Cols, cfg.Grid.Rows)
}

func runLevelsShow(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lvl, err := levelLoader(cfg, cliLogger()).LoadByID(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := formats.MarshalYAML(lvl.Format())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}

func runLevelsValidate(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	count, err := levelLoader(cfg, cliLogger()).Validate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid levels:\n%v\n", err)
		if count > 0 {
			fmt.Fprintf(os.Stderr, "%d levels are valid\n", count)
		}
		os.Exit(1)
	}

	fmt.Printf("All %d levels are valid\n", count)
}
