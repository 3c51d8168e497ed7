package constants

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnvFile reads a .env file in the working directory if there is one.
// Variables already set in the environment win.
func LoadEnvFile() error {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func GetPort() int {
	if port, err := strconv.Atoi(os.Getenv("CHORDID_PORT")); err == nil && port > 0 {
		return port
	}
	return 8080
}

func GetPreferFlats() bool {
	v, err := strconv.ParseBool(os.Getenv("CHORDID_PREFER_FLATS"))
	return err == nil && v
}

func GetLogLevel() string {
	level := strings.TrimSpace(os.Getenv("CHORDID_LOG_LEVEL"))
	if level != "" {
		return level
	}
	return "info"
}

// GetMidiIn is a port number or a port name.
func GetMidiIn() string {
	in := os.Getenv("CHORDID_MIDI_IN")
	if in != "" {
		return in
	}
	return "0"
}

func GetDebounce() time.Duration {
	if ms, err := strconv.Atoi(os.Getenv("CHORDID_DEBOUNCE_MS")); err == nil && ms >= 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return 150 * time.Millisecond
}

// ignore really short or really long chords when scanning files
const MinChordNotes = 2
const MaxChordNotes = 16
