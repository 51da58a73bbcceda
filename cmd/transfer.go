package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/mythoscape/internal/store"
	"github.com/papapumpkin/mythoscape/internal/telemetry"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Download the journal as JSON",
	Long: `Writes the journal file's contents as JSON. With a path the JSON is written
there; otherwise it goes to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Replace the journal with an uploaded JSON file",
	Long: `Reads a journal JSON file and replaces the current journal with it. A file
that is not valid journal JSON is reported and the current journal is left
unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer ws.close()

	state, err := ws.load()
	if err != nil {
		return err
	}

	dest := "-"
	if len(args) == 1 {
		dest = args[0]
	}
	if dest == "-" {
		if err := store.Encode(cmd.OutOrStdout(), state); err != nil {
			return err
		}
	} else {
		if err := store.Save(dest, state); err != nil {
			return err
		}
		ws.printer.Info(fmt.Sprintf("exported %d entries to %s", len(state.Entries), dest))
	}
	_ = ws.emitter.Record(telemetry.KindStateExported, map[string]any{
		"dest":    dest,
		"entries": len(state.Entries),
	})
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer ws.close()

	src := args[0]
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	state, err := store.Unmarshal(data)
	if err != nil {
		_ = ws.emitter.Record(telemetry.KindLoadFailed, map[string]string{
			"path":  src,
			"error": err.Error(),
		})
		if errors.Is(err, store.ErrMalformed) {
			ws.printer.Error(fmt.Sprintf("%s is not a valid journal; %s was left unchanged", src, ws.cfg.StateFile))
		}
		return fmt.Errorf("importing %s: %w", src, err)
	}

	if issues := store.Check(state); len(issues) > 0 {
		ws.printer.Warn(fmt.Sprintf("%s has %d issue(s); run validate for details", src, len(issues)))
	}

	if err := ws.save(state); err != nil {
		return err
	}
	_ = ws.emitter.Record(telemetry.KindStateImported, map[string]any{
		"source":  src,
		"entries": len(state.Entries),
	})
	ws.printer.Imported(src, state)
	return nil
}
