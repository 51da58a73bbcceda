package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/mythoscape/internal/assets"
	"github.com/papapumpkin/mythoscape/internal/config"
	"github.com/papapumpkin/mythoscape/internal/journal"
	"github.com/papapumpkin/mythoscape/internal/metaphor"
	"github.com/papapumpkin/mythoscape/internal/store"
	"github.com/papapumpkin/mythoscape/internal/telemetry"
	"github.com/papapumpkin/mythoscape/internal/ui"
)

// workspace bundles the per-command dependencies resolved from config.
type workspace struct {
	cfg     config.Config
	printer *ui.Printer
	emitter *telemetry.Emitter
}

// openWorkspace loads config and opens the telemetry stream. The caller
// must call close.
func openWorkspace(cmd *cobra.Command) (*workspace, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	ws := &workspace{
		cfg:     cfg,
		printer: ui.NewWithWriter(cmd.ErrOrStderr()),
	}
	if cfg.TelemetryFile != "" {
		em, err := telemetry.NewEmitter(cfg.TelemetryFile)
		if err != nil {
			// Telemetry is best-effort; a bad path must not block journaling.
			ws.printer.Warn(err.Error())
		} else {
			ws.emitter = em
		}
	}
	_ = ws.emitter.Record(telemetry.KindSessionStart, map[string]string{
		"command":    cmd.Name(),
		"state_file": cfg.StateFile,
	})
	return ws, nil
}

func (w *workspace) close() {
	if err := w.emitter.Close(); err != nil && w.cfg.Verbose {
		w.printer.Warn(err.Error())
	}
}

// load reads the journal file. A malformed file is reported and returned as
// an error so the caller never overwrites it.
func (w *workspace) load() (journal.SavedState, error) {
	state, err := store.Load(w.cfg.StateFile)
	if err != nil {
		_ = w.emitter.Record(telemetry.KindLoadFailed, map[string]string{
			"path":  w.cfg.StateFile,
			"error": err.Error(),
		})
		if errors.Is(err, store.ErrMalformed) {
			w.printer.Error(fmt.Sprintf("%s is not a valid journal; it was left unchanged", w.cfg.StateFile))
		}
		return journal.SavedState{}, err
	}
	_ = w.emitter.Record(telemetry.KindStateLoaded, map[string]int{"entries": len(state.Entries)})
	if w.cfg.Verbose {
		w.printer.Info(fmt.Sprintf("loaded %s (%d entries)", w.cfg.StateFile, len(state.Entries)))
	}
	return state, nil
}

// save writes the journal file atomically.
func (w *workspace) save(state journal.SavedState) error {
	if err := store.Save(w.cfg.StateFile, state); err != nil {
		return err
	}
	_ = w.emitter.Record(telemetry.KindStateSaved, map[string]int{"entries": len(state.Entries)})
	return nil
}

// generator builds the metaphor generator from the configured pools and seed.
func (w *workspace) generator() (*metaphor.Generator, error) {
	pools := metaphor.Builtin()
	if w.cfg.MetaphorsFile != "" {
		var err error
		pools, err = metaphor.LoadPools(w.cfg.MetaphorsFile)
		if err != nil {
			return nil, err
		}
	}
	if w.cfg.Seed != 0 {
		return metaphor.NewSeeded(pools, w.cfg.Seed), nil
	}
	return metaphor.New(pools, nil), nil
}

// session loads the journal and wraps it in a session ready for submissions.
func (w *workspace) session() (*journal.Session, error) {
	state, err := w.load()
	if err != nil {
		return nil, err
	}
	gen, err := w.generator()
	if err != nil {
		return nil, err
	}
	return journal.NewSession(state, journal.WithGenerator(gen), journal.WithEmitter(w.emitter)), nil
}

// library returns the animation library for the configured assets.
func (w *workspace) library() *assets.Library {
	return assets.NewLibrary(w.cfg.AssetsDir, w.cfg.AssetPaths())
}

// checkAssets reports every glow without a usable animation.
func (w *workspace) checkAssets(lib *assets.Library) []error {
	errs := lib.Check()
	for _, err := range errs {
		_ = w.emitter.Record(telemetry.KindAssetMissing, map[string]string{"error": err.Error()})
	}
	return errs
}
