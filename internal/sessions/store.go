package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stayhub/stayctl/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	EntryToken = "token"
	EntryUser  = "user"

	storeVersion = "1.0"
)

// StoredSession is the durable (token, user) pair.
type StoredSession struct {
	Token string
	User  models.UserProfile
}

// Store persists the session. Load returns nil when no valid pair exists
// and clears whatever partial or corrupt entries it found.
type Store interface {
	Load(ctx context.Context) (*StoredSession, error)
	Save(ctx context.Context, token string, user *models.UserProfile) error
	Clear(ctx context.Context) error
}

// encodeEntries renders a session as the two string entries.
func encodeEntries(token string, user *models.UserProfile) (map[string]string, error) {
	if len(token) == 0 {
		return nil, fmt.Errorf("cannot persist a session without a token")
	}
	if user == nil {
		return nil, fmt.Errorf("cannot persist a session without a user")
	}

	data, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user: %w", err)
	}

	return map[string]string{
		EntryToken: token,
		EntryUser:  string(data),
	}, nil
}

// decodeEntries returns the stored pair, or nil and whether the entries
// were partial or corrupt and need clearing.
func decodeEntries(entries map[string]string) (*StoredSession, bool) {
	token := entries[EntryToken]
	rawUser := entries[EntryUser]

	if len(token) == 0 && len(rawUser) == 0 {
		return nil, len(entries) > 0
	}

	if len(token) == 0 || len(rawUser) == 0 {
		return nil, true
	}

	var user models.UserProfile
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return nil, true
	}

	if err := user.Validate(); err != nil {
		return nil, true
	}

	return &StoredSession{Token: token, User: user}, false
}

type sessionFile struct {
	Version   string            `yaml:"version"`
	Timestamp time.Time         `yaml:"timestamp"`
	Entries   map[string]string `yaml:"entries"`
}

// FileStore keeps the session in a YAML file readable only by the owner.
type FileStore struct {
	lock sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// SessionFileName derives the per endpoint file name, e.g.
// "localhost_5000.yaml" for http://localhost:5000/api.
func SessionFileName(endpoint string) string {
	host := endpoint
	if parsed, err := url.Parse(endpoint); err == nil && len(parsed.Host) > 0 {
		host = parsed.Host
	}

	replacer := strings.NewReplacer(":", "_", "/", "_", "\\", "_")
	return fmt.Sprintf("%s.yaml", replacer.Replace(host))
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load(ctx context.Context) (*StoredSession, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var file sessionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		logrus.WithError(err).WithField("path", s.path).Warnln("Failed to parse session file, clearing it")
		return nil, s.clear()
	}

	stored, corrupt := decodeEntries(file.Entries)
	if corrupt {
		logrus.WithField("path", s.path).Warnln("Discarding incomplete session entries")
		return nil, s.clear()
	}

	return stored, nil
}

func (s *FileStore) Save(ctx context.Context, token string, user *models.UserProfile) error {
	entries, err := encodeEntries(token, user)
	if err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := yaml.Marshal(sessionFile{
		Version:   storeVersion,
		Timestamp: time.Now().UTC(),
		Entries:   entries,
	})
	if err != nil {
		return fmt.Errorf("failed to encode session file: %w", err)
	}

	// Write a sibling file and rename it over the old one so readers only
	// ever see the previous or the new pair.
	tmp, err := os.CreateTemp(dir, ".session-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create session file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to restrict session file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write session file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}

	logrus.WithField("path", s.path).Debugln("Session saved")

	return nil
}

func (s *FileStore) Clear(ctx context.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.clear()
}

func (s *FileStore) clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
