package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	pdfmetadata "github.com/afmiguel/pdf-metadata"
)

var listFormat string

var (
	fileStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

// fileMetadata groups the entries of one file for structured output.
type fileMetadata struct {
	File    string              `json:"file" yaml:"file"`
	Entries []pdfmetadata.Entry `json:"entries" yaml:"entries"`
}

var listCmd = &cobra.Command{
	Use:   "list [patterns...]",
	Short: "List the metadata of one or more PDF files",
	Long: `List prints every Info dictionary entry of the given files.
Arguments may be plain paths or glob patterns (including **).`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		paths := expandPatterns(args)
		if len(paths) == 0 {
			fatal("no files matched", fmt.Errorf("patterns: %v", args))
		}

		results := make([]fileMetadata, 0, len(paths))
		for _, path := range paths {
			entries, err := pdfmetadata.GetMetadata(path)
			if err != nil {
				fatal(fmt.Sprintf("reading %s", path), err)
			}
			results = append(results, fileMetadata{File: path, Entries: entries})
		}

		switch listFormat {
		case "json":
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(results); err != nil {
				fatal("encoding JSON", err)
			}
		case "yaml":
			encoder := yaml.NewEncoder(os.Stdout)
			defer encoder.Close()
			if err := encoder.Encode(results); err != nil {
				fatal("encoding YAML", err)
			}
		case "plain":
			for _, r := range results {
				printPlain(r)
			}
		default:
			fatal("unknown format", fmt.Errorf("%q (want plain, json or yaml)", listFormat))
		}
	},
}

func printPlain(r fileMetadata) {
	fmt.Println(fileStyle.Render(r.File))
	if len(r.Entries) == 0 {
		fmt.Println(dimStyle.Render("  (no Info dictionary entries)"))
		return
	}
	for i, e := range r.Entries {
		fmt.Printf("%2d. %s: %s\n", i+1, keyStyle.Render(fmt.Sprintf("%-20s", e.Key)), e.Value)
	}
}

// expandPatterns resolves glob patterns to paths; non-pattern arguments
// pass through untouched so missing files still report a load error.
func expandPatterns(args []string) []string {
	var paths []string
	for _, arg := range args {
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil || matches == nil {
			paths = append(paths, arg)
			continue
		}
		paths = append(paths, matches...)
	}
	return paths
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listFormat, "format", "plain", "Output format: plain, json or yaml")
}
