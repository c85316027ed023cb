package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"irval/internal/engine"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the type kind classification table",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := loadConfig(path)
		if err != nil {
			return err
		}
		applyColorMode(cmd, cfg)

		name := color.New(color.FgCyan)
		for _, k := range engine.Kinds() {
			note := ""
			if k == engine.KindMetadata {
				note = "  (no wrapper variant; classification fails)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s%s\n", k, name.Sprint(k.String()), note)
		}
		return nil
	},
}
