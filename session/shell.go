package session

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/chordid/chord"
	"github.com/jsphweid/chordid/logging"
	"github.com/jsphweid/chordid/note"
)

const helpText = `
Commands:
  start
  end
  note <name>...
  device
  quit
`

// Shell runs the text commands that drive a capture session.
type Shell struct {
	Controller  *Controller
	Out         io.Writer
	PreferFlats bool
	// Devices lists input devices for the "device" command.
	Devices func() []string
}

func (s *Shell) Help() {
	fmt.Fprint(s.Out, helpText)
}

// Handle runs one command line. It returns false when the shell should exit.
func (s *Shell) Handle(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return true
	}

	switch strings.ToLower(tokens[0]) {
	case "start":
		id, ok := s.Controller.Start()
		if !ok {
			fmt.Fprintln(s.Out, "Already running.")
			return true
		}
		logging.WithFields(logging.Fields{"session": id}).Info("session started")
		fmt.Fprintln(s.Out, "Detecting.")
	case "end":
		s.end()
	case "note", "notes":
		s.notes(tokens[1:])
	case "device", "devices":
		s.devices()
	case "quit":
		fmt.Fprintln(s.Out, "Bye.")
		return false
	case "help", "?":
		s.Help()
	default:
		fmt.Fprintln(s.Out, "Unknown command.")
	}
	return true
}

func (s *Shell) end() {
	id, notes, ok := s.Controller.End()
	if !ok {
		fmt.Fprintln(s.Out, "Not running.")
		return
	}
	notes = Dedupe(notes)
	logging.WithFields(logging.Fields{"session": id, "notes": len(notes)}).Info("session ended")

	switch len(notes) {
	case 0:
		fmt.Fprintln(s.Out, "Ended. No notes were detected.")
	case 1:
		fmt.Fprintln(s.Out, "Single note "+notes[0])
	default:
		fmt.Fprintln(s.Out, "Detected: ", notes)
		res, err := chord.Analyze(notes, s.PreferFlats)
		if err != nil {
			fmt.Fprintln(s.Out, "analyze error:", err)
		} else {
			fmt.Fprintln(s.Out, res.String())
		}
	}
	fmt.Fprintln(s.Out, "Waiting to start…")
}

func (s *Shell) notes(names []string) {
	if !s.Controller.Running() {
		fmt.Fprintln(s.Out, "Not running.")
		return
	}
	for _, name := range names {
		if _, _, err := note.Parse(name); err != nil {
			fmt.Fprintln(s.Out, err)
			continue
		}
		s.Controller.Append(name)
	}
}

func (s *Shell) devices() {
	if s.Devices == nil {
		fmt.Fprintln(s.Out, "No input device detected.")
		return
	}
	names := s.Devices()
	if len(names) == 0 {
		fmt.Fprintln(s.Out, "No input device detected.")
		return
	}
	fmt.Fprintln(s.Out, "\ndevices")
	for i, name := range names {
		fmt.Fprintf(s.Out, "  %d: %s\n", i, name)
	}
	fmt.Fprintln(s.Out, "Pass --in <number|name> to pick an input.")
}
