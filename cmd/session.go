package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/etnz/valutatrade"
)

// SessionFilename is the file of the data directory that keeps the session
// of the last login, so that one-shot invocations can follow each other.
const SessionFilename = "session.json"

func sessionPath() string { return filepath.Join(config.DataDir, SessionFilename) }

// saveSession records s as the current session.
func saveSession(s *valutatrade.Session) error {
	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(config.DataDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(sessionPath(), data, 0600)
}

// loadSession returns the current session, or ErrNotLoggedIn when nobody
// logged in.
func loadSession() (*valutatrade.Session, error) {
	data, err := os.ReadFile(sessionPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, valutatrade.ErrNotLoggedIn
	}
	if err != nil {
		return nil, err
	}
	var s valutatrade.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("corrupted session file %q: %w", sessionPath(), err)
	}
	return &s, nil
}

// removeSession forgets the current session. It is not an error when
// there is none.
func removeSession() error {
	err := os.Remove(sessionPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
