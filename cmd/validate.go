package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/mythoscape/internal/store"
)

// errInvalidJournal is returned when validate finds problems in the journal.
var errInvalidJournal = errors.New("journal has issues")

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the journal file and animation assets",
	Long: `Loads the journal and reports entries with missing text or unknown moods,
creature stats that are out of range, and stats that no longer match the
mood history. Missing animation assets are reported as warnings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ws, err := openWorkspace(cmd)
		if err != nil {
			return err
		}
		defer ws.close()

		state, err := ws.load()
		if err != nil {
			return err
		}

		for _, err := range ws.checkAssets(ws.library()) {
			ws.printer.Warn(err.Error())
		}

		issues := store.Check(state)
		ws.printer.Issues(ws.cfg.StateFile, issues)
		if len(issues) > 0 {
			return fmt.Errorf("%w: %d found in %s", errInvalidJournal, len(issues), ws.cfg.StateFile)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
