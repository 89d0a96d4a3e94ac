package main

import (
	"fmt"

	"github.com/spf13/cobra"

	pdfmetadata "github.com/afmiguel/pdf-metadata"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [file] [key]",
	Short: "Delete a metadata key",
	Long:  `Delete removes a key from the Info dictionary, stamps ModDate and replaces the file atomically.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		path, key := args[0], args[1]

		if err := pdfmetadata.DeleteMetadataInPlace(path, key); err != nil {
			fatal("deleting metadata", err)
		}

		fmt.Printf("Metadata deleted: %s (%s)\n", path, key)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
