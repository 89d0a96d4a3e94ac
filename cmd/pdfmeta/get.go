package main

import (
	"fmt"

	"github.com/spf13/cobra"

	pdfmetadata "github.com/afmiguel/pdf-metadata"
)

var getCmd = &cobra.Command{
	Use:   "get [file] [key]",
	Short: "Print the value of a single metadata key",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		path, key := args[0], args[1]

		entries, err := pdfmetadata.GetMetadata(path)
		if err != nil {
			fatal(fmt.Sprintf("reading %s", path), err)
		}

		for _, e := range entries {
			if e.Key == key {
				fmt.Println(e.Value)
				return
			}
		}
		fatal("key not found", fmt.Errorf("%q in %s", key, path))
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
