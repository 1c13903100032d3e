// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docx2latex/internal/bibliography"
)

var bibCmd = &cobra.Command{
	Use:   "bib [database.bib]",
	Short: "Validate a BibTeX database and list its citation keys",
	Long: `Bib parses a BibTeX database the same way assemble does and reports
syntax errors with line numbers. With --keys it also lists every citation
key, which is useful for checking manuscript markers against the database.`,
	Args: cobra.ExactArgs(1),
	RunE: runBib,
}

func runBib(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading bibliography: %w", err)
	}

	index, err := bibliography.Build(string(src))
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d entries\n", args[0], index.Len())

	showKeys, _ := cmd.Flags().GetBool("keys")
	if showKeys {
		for _, key := range index.Keys() {
			entry, _ := index.Get(key)
			fmt.Printf("  %-30s %s\n", key, entry.Type)
		}
	}
	return nil
}

func init() {
	bibCmd.Flags().Bool("keys", false, "list citation keys and entry types")

	rootCmd.AddCommand(bibCmd)
}
