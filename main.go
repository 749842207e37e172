// Command imstyles lists, prints and previews the built-in UI themes.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"imstyles/theme"
)

var (
	configFile string
	cfg        = newViper()
	settings   Settings
	logger     = zerolog.Nop()
	closeLog   = func() {}

	showAll bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default imstyles.yaml in . or ~/.config/imstyles)")
	rootCmd.PersistentFlags().Bool("debug", false, "verbose/debug logging")
	rootCmd.PersistentFlags().String("log-dir", "", "also write logs to this directory")
	rootCmd.PersistentFlags().Float64("font-size", 0, "font pixel size (default from config)")

	previewCmd.Flags().Int("width", 0, "window width")
	previewCmd.Flags().Int("height", 0, "window height")

	showCmd.Flags().BoolVarP(&showAll, "all", "a", false, "also list roles the theme leaves at the default")

	rootCmd.AddCommand(listCmd, showCmd, fontCmd, previewCmd)
}

var rootCmd = &cobra.Command{
	Use:           "imstyles",
	Short:         "Preset themes for immediate mode UIs",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cfg, cmd)
	},
}

// initConfig binds the flags set on cmd, loads settings and starts logging.
func initConfig(v *viper.Viper, cmd *cobra.Command) error {
	if err := bindFlags(v, cmd.Flags(), "debug", "log_dir", "font_size", "width", "height"); err != nil {
		return err
	}
	s, err := loadSettings(v, configFile)
	if err != nil {
		return err
	}
	settings = s
	logger, closeLog = setupLogging(s.Debug, s.LogDir)
	logger.Debug().Interface("settings", s).Str("config", v.ConfigFileUsed()).Msg("settings loaded")
	return nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeThemeList(cmd.OutOrStdout(), settings.Theme)
	},
}

var showCmd = &cobra.Command{
	Use:       "show [theme]",
	Short:     "Print the colors and metrics a theme sets",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: theme.Names(),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := themeArg(args)
		if err != nil {
			return err
		}
		return writeTheme(cmd.OutOrStdout(), t, showAll)
	},
}

var fontCmd = &cobra.Command{
	Use:   "font",
	Short: "Describe the bundled font",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeFontInfo(cmd.OutOrStdout(), float32(settings.FontSize))
	},
}

var previewCmd = &cobra.Command{
	Use:       "preview [theme]",
	Short:     "Open a window showing a theme applied to sample widgets",
	Long:      "Open a window showing a theme applied to sample widgets.\nTab switches theme, Esc quits.",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: theme.Names(),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := themeArg(args)
		if err != nil {
			return err
		}
		if err := runPreview(logger, settings, t); err != nil {
			logger.Error().Err(err).Msg("preview failed")
			reportError(err)
			return err
		}
		return nil
	},
}

// themeArg resolves the optional theme argument, falling back to the
// configured theme.
func themeArg(args []string) (*theme.Theme, error) {
	name := settings.Theme
	if len(args) > 0 {
		name = args[0]
	}
	return theme.Lookup(name)
}

// execute runs the command line in args. The log file opened by
// initConfig is closed on every path, including failed commands.
func execute(args []string) error {
	defer func() {
		closeLog()
		closeLog = func() {}
	}()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func main() {
	if err := execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "imstyles:", err)
		os.Exit(1)
	}
}
