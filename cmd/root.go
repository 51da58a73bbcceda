package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/mythoscape/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "mythoscape",
	Short: "A self-growth journal where your soul creature evolves",
	Long: `Mythoscape is a mood journal. Each entry is tagged with a mood, answered
with a short metaphor, and nudges a soul creature whose wings, glow and scars
grow from your history. Entries form a memory map of your inner landscape.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRootDefault,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .mythoscape.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("state", "", "journal file (default mythoscape.json)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("state_file", rootCmd.PersistentFlags().Lookup("state"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".mythoscape")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("MYTHOSCAPE")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault opens the journal TUI on an interactive terminal and falls
// back to showing help otherwise.
func runRootDefault(cmd *cobra.Command, args []string) error {
	if !interactive() {
		ui.NewWithWriter(cmd.ErrOrStderr()).Banner()
		return cmd.Help()
	}
	return runTUI(tuiCmd, nil)
}

// interactive reports whether both stdin and stdout are terminals.
func interactive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
