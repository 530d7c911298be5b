package config

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultVisibility is the visibility of created snippets when none is configured
const DefaultVisibility = "intern"

// ErrMissingFile is returned when an update lacks the file path or content
var ErrMissingFile = errors.New("update requires both a file path and file content")

// Mode selects the operation a run performs
type Mode int

const (
	ModeUnset Mode = iota
	ModeCreate
	ModeUpdate
	ModeGet
)

var modeNames = map[Mode]string{
	ModeCreate: "Create",
	ModeUpdate: "Update",
	ModeGet:    "Get",
}

// ParseMode parses a mode name, ignoring case
func ParseMode(s string) (Mode, error) {
	for mode, name := range modeNames {
		if strings.EqualFold(s, name) {
			return mode, nil
		}
	}
	return ModeUnset, fmt.Errorf("invalid mode %q (must be Create, Update or Get)", s)
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return ""
}

// Set implements pflag.Value
func (m *Mode) Set(s string) error {
	mode, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Type implements pflag.Value
func (m *Mode) Type() string {
	return "mode"
}

// Opts is the configuration of a single run. It is built once from the
// command line and never modified afterwards.
type Opts struct {
	Mode        Mode
	Title       string
	FilePath    string // optional, required for ModeUpdate
	Visibility  string
	URL         string
	Token       string
	FileContent string // optional, required for ModeUpdate
}

// Validate checks the preconditions of the selected mode
func (o Opts) Validate() error {
	if o.Mode == ModeUnset {
		return fmt.Errorf("mode is required (Create, Update or Get)")
	}
	if o.Title == "" {
		return fmt.Errorf("title is required")
	}
	if o.URL == "" {
		return fmt.Errorf("url is required")
	}
	if o.Mode == ModeUpdate && (o.FilePath == "" || o.FileContent == "") {
		return ErrMissingFile
	}
	return nil
}
