package cmd

import (
	"github.com/spf13/cobra"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Show the memory map of your inner landscape",
	Args:  cobra.NoArgs,
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
		ws.printer.MemoryMap(state.Regions())
		return nil
	},
}

var creatureCmd = &cobra.Command{
	Use:   "creature",
	Short: "Show your soul creature",
	Args:  cobra.NoArgs,
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
		ws.printer.Creature(state.CreatureStats)
		return nil
	},
}

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "List past entries, newest first",
	Args:  cobra.NoArgs,
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
		ws.printer.Archive(state.Archive())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mapCmd, creatureCmd, archiveCmd)
}
