package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/mythoscape/internal/journal"
	"github.com/papapumpkin/mythoscape/internal/store"
	"github.com/papapumpkin/mythoscape/internal/tui"
)

// errNotInteractive is returned when the TUI is requested without a terminal.
var errNotInteractive = errors.New("tui requires an interactive terminal")

// tuiCmd launches the interactive journal.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive journal",
	Long: `Opens the full-screen journal with four views: a new-entry form, the memory
map, your soul creature, and the archive of past entries. Edits made to the
journal file by other programs are picked up while the TUI is open.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !interactive() {
		return errNotInteractive
	}

	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer ws.close()

	sess, err := ws.session()
	if err != nil {
		return err
	}

	lib := ws.library()
	ws.checkAssets(lib)

	opts := tui.Options{
		Session: sess,
		Save:    ws.save,
		Reload:  func() (journal.SavedState, error) { return store.Load(ws.cfg.StateFile) },
		Library: lib,
	}

	if dir := filepath.Dir(ws.cfg.StateFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if w, err := store.NewWatcher(ws.cfg.StateFile); err != nil {
		ws.printer.Warn(fmt.Sprintf("not watching %s: %v", ws.cfg.StateFile, err))
	} else if err := w.Start(); err != nil {
		ws.printer.Warn(fmt.Sprintf("not watching %s: %v", ws.cfg.StateFile, err))
	} else {
		defer w.Stop()
		opts.Changes = w.Changes
	}

	return tui.Run(opts, tui.WithOutput(cmd.OutOrStdout()))
}
