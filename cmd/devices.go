package cmd

import (
	"fmt"

	"github.com/jsphweid/chordid/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(devicesCmd)
}

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Lists MIDI inputs",
	Run: func(cmd *cobra.Command, args []string) {
		defer midi.Close()
		names := midi.InPortNames()
		if len(names) == 0 {
			fmt.Println("No input device detected.")
			return
		}
		for i, name := range names {
			fmt.Printf("%d: %s\n", i, name)
		}
	},
}
