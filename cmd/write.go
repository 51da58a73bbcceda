package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/mythoscape/internal/journal"
	"github.com/papapumpkin/mythoscape/internal/mood"
)

var writeCmd = &cobra.Command{
	Use:   "write [text...]",
	Short: "Add a journal entry",
	Long: `Adds an entry tagged with a mood, prints the metaphor it inspired, and
saves the journal. Without arguments the entry text is read from stdin.

Moods: Joy, Sadness, Anger, Reflection, Hope. A mood outside this set is
recorded but leaves the soul creature unchanged.`,
	Example: `  mythoscape write --mood hope "Finally finished the first draft"
  echo "Long walk by the river" | mythoscape write -m reflection`,
	RunE: runWrite,
}

func init() {
	writeCmd.Flags().StringP("mood", "m", string(mood.Joy), "mood for the entry")
	writeCmd.Flags().Bool("list-moods", false, "list the known moods and exit")
	rootCmd.AddCommand(writeCmd)
}

func runWrite(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer ws.close()

	if list, _ := cmd.Flags().GetBool("list-moods"); list {
		labels := make([]string, 0, len(mood.All()))
		for _, m := range mood.All() {
			labels = append(labels, m.Label())
		}
		ws.printer.ShowMoods(labels)
		return nil
	}

	raw, _ := cmd.Flags().GetString("mood")
	m, known := mood.Parse(raw)
	if !known {
		ws.printer.Warn(fmt.Sprintf("unrecognized mood %q: the entry is kept but your creature will not change", raw))
	}

	text, err := entryText(cmd, args)
	if err != nil {
		return err
	}

	sess, err := ws.session()
	if err != nil {
		return err
	}

	entry, err := sess.Submit(text, m)
	if errors.Is(err, journal.ErrEmptyEntry) {
		ws.printer.EmptyEntry()
		return nil
	}
	if err != nil {
		return err
	}
	if err := ws.save(sess.State()); err != nil {
		return err
	}

	ws.printer.EntrySaved(entry)
	if ws.cfg.Verbose {
		ws.printer.Creature(sess.Creature())
	}
	return nil
}

// entryText joins the arguments, or reads stdin when there are none and it
// is not a terminal.
func entryText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return "", nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading entry from stdin: %w", err)
	}
	return string(data), nil
}
