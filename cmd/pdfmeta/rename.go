package main

import (
	"fmt"

	"github.com/spf13/cobra"

	pdfmetadata "github.com/afmiguel/pdf-metadata"
)

var renameCmd = &cobra.Command{
	Use:   "rename [file] [old-key] [new-key]",
	Short: "Rename a metadata key",
	Long:  `Rename moves a value to a new key without re-encoding it, stamps ModDate and replaces the file atomically.`,
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		path, oldKey, newKey := args[0], args[1], args[2]

		if err := pdfmetadata.RenameMetadataKey(path, oldKey, newKey); err != nil {
			fatal("renaming metadata key", err)
		}

		fmt.Printf("Metadata key renamed: %s (%s -> %s)\n", path, oldKey, newKey)
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
