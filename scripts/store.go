package scripts

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// namePattern permits alphanumerics, underscore and hyphen, with a single
// optional dot before an extension.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+(\.[A-Za-z0-9_-]+)?$`)

// Store persists scripts as files in a single directory, one file per
// record, named after the script. The directory is external state: another
// process may add or remove files at any time, so every operation re-reads
// it rather than caching a prior view.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created lazily
// on the first Put.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store directory
func (s *Store) Dir() string {
	return s.dir
}

// ValidateName checks that name is safe to use as a filename
func ValidateName(name string) error {
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return &InvalidNameError{Name: name, Reason: "path traversal not permitted"}
	}
	if !namePattern.MatchString(name) {
		return &InvalidNameError{Name: name, Reason: "allowed: letters, digits, underscore, hyphen, one optional extension"}
	}
	return nil
}

// Put writes body under name, silently overwriting any existing record with
// the same name. Last write wins; there is no versioning.
func (s *Store) Put(name, body string) (*Record, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	return &Record{
		Name:     name,
		Body:     body,
		Path:     path,
		Size:     info.Size(),
		Modified: info.ModTime(),
	}, nil
}

// Get loads the record for name, including its body
func (s *Store) Get(name string) (*Record, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Name: name}
		}
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		// Deleted between read and stat
		return nil, &NotFoundError{Name: name}
	}

	return &Record{
		Name:     name,
		Body:     string(data),
		Path:     path,
		Size:     info.Size(),
		Modified: info.ModTime(),
	}, nil
}

// List returns all records ordered by modification time, newest first.
// A missing store directory is an empty store, not an error.
func (s *Store) List() ([]*Record, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	records := make([]*Record, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Removed while listing
			continue
		}
		records = append(records, &Record{
			Name:     entry.Name(),
			Path:     filepath.Join(s.dir, entry.Name()),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Modified.After(records[j].Modified)
	})

	return records, nil
}

// Delete removes the record for name. Deleting a missing name is an error,
// so typos surface instead of silently succeeding.
func (s *Store) Delete(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	path := filepath.Join(s.dir, name)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return &NotFoundError{Name: name}
		}
		return err
	}
	return nil
}
