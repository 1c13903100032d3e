// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docx2latex/internal/journal"
	"github.com/pdiddy/docx2latex/pkg/types"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded assembly runs",
	Long: `Runs lists the assembly run journal, newest first: the manuscript and
template used, the run outcome, and how many citation keys were left
unresolved.`,
	RunE: runRuns,
}

func runRuns(cmd *cobra.Command, args []string) error {
	journalDir, _ := cmd.Flags().GetString("journal-dir")
	cfg := types.JournalConfig{Dir: journalDir}
	store, err := journal.Open(cfg.Dir)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(context.Background())
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Printf("%-4s  %-20s  %-25s  %-12s  %-7s  %-10s  %s\n",
		"ID", "Date", "Manuscript", "Template", "Status", "Unresolved", "Warnings")
	for _, r := range records {
		manuscript := r.Manuscript
		if len(manuscript) > 25 {
			manuscript = manuscript[:22] + "..."
		}
		fmt.Printf("%-4d  %-20s  %-25s  %-12s  %-7s  %-10d  %d\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), manuscript,
			r.Template, r.Status, len(r.Unresolved), len(r.Warnings))
	}
	return nil
}

func init() {
	runsCmd.Flags().String("journal-dir", "output", "directory holding the run journal database")
	runsCmd.Flags().Bool("json", false, "output records as JSON")

	rootCmd.AddCommand(runsCmd)
}
