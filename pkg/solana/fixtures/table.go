package fixtures

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/code-payments/code-fixtures/pkg/solana/bytes32"
)

var (
	ErrNotFound      = errors.New("constant not found")
	ErrInvalidName   = errors.New("invalid constant name")
	ErrDuplicateName = errors.New("duplicate constant name")
	ErrLabelMismatch = errors.New("label does not match value")
)

// Entry is a named 32 byte constant
type Entry struct {
	Name  string
	Value bytes32.Bytes32

	// Label is the human readable base58 form of Value. It's optional and
	// only used for documentation purposes.
	Label string
}

// Table is an immutable mapping of names to 32 byte constants. It's safe for
// concurrent use.
type Table struct {
	byName  map[string]bytes32.Bytes32
	entries []Entry
}

// New builds a table from the provided entries
func New(entries ...Entry) (*Table, error) {
	t := &Table{
		byName:  make(map[string]bytes32.Bytes32, len(entries)),
		entries: make([]Entry, 0, len(entries)),
	}

	for _, entry := range entries {
		if err := t.add(entry); err != nil {
			return nil, err
		}
	}

	slices.SortFunc(t.entries, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})

	return t, nil
}

// MustNew is New that panics on error
func MustNew(entries ...Entry) *Table {
	t, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) add(entry Entry) error {
	if len(entry.Name) == 0 {
		return ErrInvalidName
	}

	if _, ok := t.byName[entry.Name]; ok {
		return errors.Wrapf(ErrDuplicateName, "name %q", entry.Name)
	}

	if len(entry.Label) > 0 && entry.Label != entry.Value.ToBase58() {
		return errors.Wrapf(ErrLabelMismatch, "%s: label %s, value %s", entry.Name, entry.Label, entry.Value.ToBase58())
	}

	t.byName[entry.Name] = entry.Value
	t.entries = append(t.entries, entry)
	return nil
}

// With returns a new table containing the entries of t and the provided
// entries. t is left unchanged.
func (t *Table) With(entries ...Entry) (*Table, error) {
	combined := make([]Entry, 0, len(t.entries)+len(entries))
	combined = append(combined, t.entries...)
	combined = append(combined, entries...)
	return New(combined...)
}

// Get returns the value for a known name
func (t *Table) Get(name string) (bytes32.Bytes32, error) {
	value, ok := t.byName[name]
	if !ok {
		return bytes32.Zero, errors.Wrapf(ErrNotFound, "name %q", name)
	}
	return value, nil
}

// MustGet is Get that panics on error
func (t *Table) MustGet(name string) bytes32.Bytes32 {
	value, err := t.Get(name)
	if err != nil {
		panic(err)
	}
	return value
}

// Has returns whether name is in the table
func (t *Table) Has(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Names returns all names in sorted order
func (t *Table) Names() []string {
	res := make([]string, len(t.entries))
	for i, entry := range t.entries {
		res[i] = entry.Name
	}
	return res
}

// Entries returns a copy of all entries, sorted by name
func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

// NameOf returns the first name, in sorted order, whose value is value
func (t *Table) NameOf(value bytes32.Bytes32) (string, bool) {
	for _, entry := range t.entries {
		if entry.Value.Equals(value) {
			return entry.Name, true
		}
	}
	return "", false
}

// Len returns the number of entries
func (t *Table) Len() int {
	return len(t.entries)
}
