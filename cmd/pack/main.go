// pack builds the content archive the resource loader falls back to.
//
// Usage:
//
//	pack <archive_name> <directory>
//
// Every regular file directly inside directory is stored under its base
// name. An existing archive is replaced.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gander/internal/storage"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pack <archive_name> <directory>",
	Short: "Pack a directory of resources into a content archive",
	Long: `Writes every regular file directly inside <directory> into the archive
<archive_name>, keyed by file name. Subdirectories are skipped.

Examples:
  pack data res`,
	Args:          cobra.ExactArgs(2),
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return pack(args[0], args[1], cmd.OutOrStdout())
	},
}

// pack writes the regular files of dir into a new archive at name.
func pack(name, dir string, out io.Writer) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("pack: cannot read %s: %w", dir, err)
	}

	ar, err := storage.Create(name)
	if err != nil {
		return err
	}
	defer ar.Close()

	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		fmt.Fprintf(out, "Adding file \"%s\"...\n", path)

		info, err := e.Info()
		if err != nil {
			return fmt.Errorf("pack: cannot stat %s: %w", path, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("pack: cannot read %s: %w", path, err)
		}
		if err := ar.Put(e.Name(), data, info.Mode(), info.ModTime()); err != nil {
			return err
		}
	}

	stored, err := ar.List()
	if err != nil {
		return err
	}
	var total int64
	for _, s := range stored {
		total += s.Size
	}
	fmt.Fprintf(out, "Packed %d files (%d bytes) into %s.\n", len(stored), total, ar.Path())
	return nil
}
