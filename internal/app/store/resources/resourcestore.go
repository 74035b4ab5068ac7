// internal/app/store/resources/resourcestore.go
package resourcestore

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dalemusser/communityhub/internal/app/system/finder"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed seed/resources.yaml
var seedFS embed.FS

const seedPath = "seed/resources.yaml"

// idNamespace scopes the name-derived ids of entries that omit one.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://communityhub/resources"))

var (
	ErrEmptyName       = errors.New("resource name is required")
	ErrUnknownCategory = errors.New("resource category is not a known category")
	ErrDuplicateID     = errors.New("resource id is already used")
	ErrBadStatus       = errors.New(`status must be "active"|"temporarily_closed"`)
)

// Store is the read-only, in-memory resource dataset. It is safe for
// concurrent use because nothing mutates it after New returns.
type Store struct {
	items []models.Resource
	byID  map[string]int
}

// document is the on-disk dataset layout.
type document struct {
	Resources []models.Resource `yaml:"resources"`
}

// New validates items and builds a Store. The slice is copied.
//
// Entries without an id get one derived from their name, and entries
// without a status are marked active.
func New(items []models.Resource) (*Store, error) {
	s := &Store{
		items: make([]models.Resource, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}

	for i, r := range items {
		r.Name = strings.TrimSpace(r.Name)
		if r.Name == "" {
			return nil, fmt.Errorf("resource %d: %w", i, ErrEmptyName)
		}
		if !models.IsKnownCategory(r.Category) {
			return nil, fmt.Errorf("resource %d (%s): %q: %w", i, r.Name, r.Category, ErrUnknownCategory)
		}
		if r.Status == "" {
			r.Status = models.DefaultStatus
		}
		if r.Status != models.StatusActive && r.Status != models.StatusTemporarilyClosed {
			return nil, fmt.Errorf("resource %d (%s): %w", i, r.Name, ErrBadStatus)
		}
		r.ID = strings.TrimSpace(r.ID)
		if r.ID == "" {
			r.ID = DeriveID(r.Name)
		}
		if _, dup := s.byID[r.ID]; dup {
			return nil, fmt.Errorf("resource %d (%s): %q: %w", i, r.Name, r.ID, ErrDuplicateID)
		}

		s.byID[r.ID] = len(s.items)
		s.items = append(s.items, r)
	}
	return s, nil
}

// DeriveID returns the stable id used for an entry named name.
func DeriveID(name string) string {
	return uuid.NewSHA1(idNamespace, []byte(strings.ToLower(name))).String()
}

// Load reads a YAML dataset from path, or the embedded seed when path is "".
func Load(path string) (*Store, error) {
	var (
		raw []byte
		err error
	)
	if path == "" {
		raw, err = seedFS.ReadFile(seedPath)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Decode(bytes.NewReader(raw))
}

// Decode parses a YAML dataset. Unknown fields are rejected so typos in
// hand-edited files surface at startup.
func Decode(r io.Reader) (*Store, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return New(doc.Resources)
}

// All returns the dataset in its original order. Callers get their own copy.
func (s *Store) All() []models.Resource {
	out := make([]models.Resource, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of resources.
func (s *Store) Len() int {
	return len(s.items)
}

// Get looks up a resource by id.
func (s *Store) Get(id string) (models.Resource, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Resource{}, false
	}
	return s.items[i], true
}

// Categories returns the selectable category filters for this dataset.
func (s *Store) Categories() []string {
	return finder.Categories(s.items)
}

// CountByCategory returns how many resources each category holds.
func (s *Store) CountByCategory() map[string]int {
	out := make(map[string]int)
	for _, r := range s.items {
		out[r.Category]++
	}
	return out
}
