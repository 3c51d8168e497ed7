package cmd

import (
	"github.com/jsphweid/chordid/constants"
	"github.com/jsphweid/chordid/logging"
	"github.com/spf13/cobra"
)

var (
	preferFlats bool
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "chordid",
	Short: "Names chords from notes",
	Long: `chordid names the chord, interval or power chord formed by a set of notes,
from the command line, a MIDI keyboard, MIDI files or over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("flats") {
			preferFlats = constants.GetPreferFlats()
		}
		if logLevel == "" {
			logLevel = constants.GetLogLevel()
		}
		return logging.Init(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&preferFlats, "flats", false, "spell notes with flats (env CHORDID_PREFER_FLATS)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (env CHORDID_LOG_LEVEL)")
}

func Execute() {
	cobra.CheckErr(constants.LoadEnvFile())
	cobra.CheckErr(rootCmd.Execute())
}
