// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docx2latex/internal/template"
)

var templateCmd = &cobra.Command{
	Use:   "template [folder]",
	Short: "Validate a journal template folder",
	Long: `Template loads a journal template folder (main.tex plus template.yaml)
and reports its declared placeholders. Manifest errors such as unknown
section kinds or duplicate placeholder names are reported the same way
assemble would report them.`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplate,
}

func runTemplate(cmd *cobra.Command, args []string) error {
	tpl, err := template.LoadDir(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("template %q: %d placeholder(s)\n", tpl.Name, len(tpl.Placeholders))
	for _, p := range tpl.Placeholders {
		attrs := ""
		if p.Required {
			attrs += " required"
		}
		if p.Repeating {
			attrs += " repeating"
		}
		if p.Heading != "" {
			attrs += fmt.Sprintf(" heading=%q", p.Heading)
		}
		fmt.Printf("  %-20s kind=%s%s\n", p.Name, p.Kind, attrs)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(templateCmd)
}
