package midi

import (
	"strconv"

	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// NoteHandler receives key presses and releases from an input port.
type NoteHandler interface {
	NoteOn(key uint8)
	NoteOff(key uint8)
}

// Dispatch forwards note start/end messages to h and reports whether msg was one.
func Dispatch(msg gomidi.Message, h NoteHandler) bool {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		h.NoteOn(key)
	case msg.GetNoteEnd(&ch, &key):
		h.NoteOff(key)
	default:
		return false
	}
	return true
}

// OpenIn finds an input port by number or by name. A driver must be
// registered by the caller.
func OpenIn(port string) (drivers.In, error) {
	if n, err := strconv.Atoi(port); err == nil {
		in, err := gomidi.InPort(n)
		return in, errors.Wrapf(err, "can't open MIDI input %v", n)
	}
	in, err := gomidi.FindInPort(port)
	return in, errors.Wrapf(err, "can't find MIDI input %q", port)
}

// Listen feeds note events from in to h until stop is called.
func Listen(in drivers.In, h NoteHandler) (stop func(), err error) {
	stop, err = gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		Dispatch(msg, h)
	})
	if err != nil {
		return nil, errors.Wrap(err, "can't listen to MIDI input")
	}
	return stop, nil
}

// InPortNames lists the available input ports.
func InPortNames() []string {
	var res []string
	for _, in := range gomidi.GetInPorts() {
		res = append(res, in.String())
	}
	return res
}

func Close() {
	gomidi.CloseDriver()
}
