package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	pdfmetadata "github.com/afmiguel/pdf-metadata"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-list the metadata of a file whenever it changes",
	Long: `Watch observes the file's directory and prints the metadata again after
every change. The directory is watched rather than the file itself because
atomic updates replace the inode.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path, err := filepath.Abs(args[0])
		if err != nil {
			fatal("resolving path", err)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			fatal("creating watcher", err)
		}
		defer watcher.Close()

		if err := watcher.Add(filepath.Dir(path)); err != nil {
			fatal("watching directory", err)
		}

		printFile(path)

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

		// Atomic replaces arrive as a rename burst; a short debounce
		// collapses it into one reload.
		var pending *time.Timer
		reload := make(chan struct{}, 1)

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				slog.Debug("change detected", "event", event.Op.String())
				if pending != nil {
					pending.Stop()
				}
				pending = time.AfterFunc(100*time.Millisecond, func() {
					select {
					case reload <- struct{}{}:
					default:
					}
				})

			case <-reload:
				printFile(path)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("watcher error", "error", err)

			case <-sigs:
				return
			}
		}
	},
}

func printFile(path string) {
	entries, err := pdfmetadata.GetMetadata(path)
	if err != nil {
		slog.Error("reading metadata", "path", path, "error", err)
		return
	}
	fmt.Printf("\n[%s]\n", time.Now().Format(time.TimeOnly))
	printPlain(fileMetadata{File: path, Entries: entries})
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
