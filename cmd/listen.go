package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordid/constants"
	"github.com/jsphweid/chordid/logging"
	"github.com/jsphweid/chordid/midi"
	"github.com/jsphweid/chordid/session"
	"github.com/spf13/cobra"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var (
	inPort string
	settle time.Duration
)

func init() {
	listenCmd.Flags().StringVar(&inPort, "in", "", "MIDI input number or name (env CHORDID_MIDI_IN, default 0)")
	listenCmd.Flags().DurationVar(&settle, "debounce", 0, "wait this long after the last key change (env CHORDID_DEBOUNCE_MS)")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords played on a MIDI keyboard",
	Long:  `Names the chord formed by the keys held on a MIDI input, each time it changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if settle == 0 {
			settle = constants.GetDebounce()
		}
		return listen(resolveInPort(), settle)
	},
}

func resolveInPort() string {
	if inPort != "" {
		return inPort
	}
	return constants.GetMidiIn()
}

func waitForInterrupt() {
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	<-ctrlc
}

func listen(port string, wait time.Duration) error {
	defer midi.Close()
	in, err := midi.OpenIn(port)
	if err != nil {
		return err
	}

	live := session.NewLive(os.Stdout, preferFlats)
	debounced := debounce.New(wait)
	held := session.NewHeldNotes(func(keys []uint8) {
		debounced(func() {
			live.Show(keys)
		})
	})

	stop, err := midi.Listen(in, held)
	if err != nil {
		return err
	}
	defer stop()

	logging.WithFields(logging.Fields{"input": in.String(), "debounce": wait}).Info("listening, Ctrl-C to stop")
	waitForInterrupt()
	return nil
}
