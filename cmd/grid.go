package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jaewonkim/ivsched/config"
	"github.com/jaewonkim/ivsched/core/slots"
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Print the generated slot grid without scheduling",
	RunE:  runGrid,
}

func init() {
	rootCmd.AddCommand(gridCmd)
}

func runGrid(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	grid, err := slots.Generate(cfg.Grid)
	if err != nil {
		return fmt.Errorf("slot grid: %w", err)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(grid)
}
