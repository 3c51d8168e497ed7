package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/jsphweid/chordid/logging"
	"github.com/jsphweid/chordid/midi"
	"github.com/jsphweid/chordid/session"
	"github.com/spf13/cobra"
)

func init() {
	sessionCmd.Flags().StringVar(&inPort, "in", "", "MIDI input number or name (env CHORDID_MIDI_IN, default 0)")
	rootCmd.AddCommand(sessionCmd)
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Collects notes between start and end, then names the chord",
	Long: `Opens an interactive shell. Notes played on the MIDI input between "start"
and "end" are collected and named together. Notes can also be typed with "note".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(resolveInPort())
	},
}

func runSession(port string) error {
	defer midi.Close()
	ctrl := session.NewController()

	in, err := midi.OpenIn(port)
	if err != nil {
		logging.WithFields(logging.Fields{"input": port}).Warn(err.Error() + ", notes can still be typed")
	} else {
		stop, err := midi.Listen(in, session.Recorder{Controller: ctrl, PreferFlats: preferFlats})
		if err != nil {
			return err
		}
		defer stop()
	}

	rl, err := readline.New("Put commands here: ")
	if err != nil {
		return err
	}
	defer rl.Close()

	shell := &session.Shell{
		Controller:  ctrl,
		Out:         rl.Stdout(),
		PreferFlats: preferFlats,
		Devices:     midi.InPortNames,
	}
	shell.Help()
	fmt.Fprintln(os.Stdout, "'start' to begin, 'end' to analyze, 'quit' to exit.")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !shell.Handle(line) {
			return nil
		}
	}
}
