package creds

import (
	"errors"
	"log/slog"
)

// maxEntries bounds every table scan. A table whose sentinel does not
// appear within this many entries is considered misconfigured; scans
// truncate there instead of running off the end.
const maxEntries = 1000

// ErrTableTooLarge is returned when no sentinel terminates the table
// within the maximum entry count.
var ErrTableTooLarge = errors.New("credential table exceeds maximum entry count")

// Credential is one named Wi-Fi credential entry.
type Credential struct {
	Name     string `json:"name" mapstructure:"name"`
	SSID     string `json:"ssid" mapstructure:"ssid"`
	Password string `json:"password,omitempty" mapstructure:"password"`
}

// sentinel reports whether c terminates the table. Valid entries always
// carry a name; an entry without one marks end-of-table.
func (c Credential) sentinel() bool {
	return c.Name == ""
}

// Masked returns a copy of c with the password replaced for display.
func (c Credential) Masked() Credential {
	if c.Password != "" {
		c.Password = "***"
	}
	return c
}

// LogValue implements slog.LogValuer. The password never reaches log output.
func (c Credential) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", c.Name),
		slog.String("ssid", c.SSID),
	)
}

// Table is an immutable, insertion-ordered credential table terminated by
// a sentinel entry. The entry at index 0 is the default credential, used
// whenever no name is given or a requested name is not found. All methods
// are read-only and safe for concurrent use.
type Table struct {
	records []Credential
}

// New builds a table from the given records. The records are copied, and a
// sentinel is appended if none is present; a sentinel already inside the
// slice truncates the table there, as it would in the source array.
func New(records ...Credential) *Table {
	rs := make([]Credential, len(records), len(records)+1)
	copy(rs, records)

	terminated := false
	for _, r := range rs {
		if r.sentinel() {
			terminated = true
			break
		}
	}
	if !terminated {
		rs = append(rs, Credential{})
	}

	return &Table{records: rs}
}

// Count returns the number of real entries before the sentinel, capped at
// maxEntries.
func (t *Table) Count() int {
	n := len(t.records)
	if n > maxEntries {
		n = maxEntries
	}
	for i := 0; i < n; i++ {
		if t.records[i].sentinel() {
			return i
		}
	}
	return n
}

// NameAt returns the name of the entry at index i, or false when i is out
// of range.
func (t *Table) NameAt(i int) (string, bool) {
	if i < 0 || i >= t.Count() {
		return "", false
	}
	return t.records[i].Name, true
}

// Find returns the first entry whose name matches exactly. An empty name
// never matches.
func (t *Table) Find(name string) (Credential, bool) {
	if name == "" {
		return Credential{}, false
	}
	n := t.Count()
	for i := 0; i < n; i++ {
		if t.records[i].Name == name {
			return t.records[i], true
		}
	}
	return Credential{}, false
}

// Default returns the entry at index 0, or false when the table is empty.
func (t *Table) Default() (Credential, bool) {
	if t.Count() == 0 {
		return Credential{}, false
	}
	return t.records[0], true
}

// DefaultName returns the name of the default entry.
func (t *Table) DefaultName() (string, bool) {
	return t.NameAt(0)
}

// Resolve applies the lookup policy: an empty name resolves to the default
// entry; a present name resolves to its match, or falls back to the default
// when there is none. It returns false only for an empty table.
func (t *Table) Resolve(name string) (Credential, bool) {
	if name == "" {
		return t.Default()
	}
	if c, ok := t.Find(name); ok {
		return c, true
	}
	return t.Default()
}

// SSID returns the SSID of the entry Resolve picks for name.
func (t *Table) SSID(name string) (string, bool) {
	c, ok := t.Resolve(name)
	if !ok {
		return "", false
	}
	return c.SSID, true
}

// Password returns the password of the entry Resolve picks for name.
func (t *Table) Password(name string) (string, bool) {
	c, ok := t.Resolve(name)
	if !ok {
		return "", false
	}
	return c.Password, true
}

// IsValid reports whether the resolved entry has a non-empty SSID and a
// non-empty password.
func (t *Table) IsValid(name string) bool {
	c, ok := t.Resolve(name)
	return ok && c.SSID != "" && c.Password != ""
}

// SSIDLength returns the byte length of the resolved SSID, or 0 when
// nothing resolves.
func (t *Table) SSIDLength(name string) int {
	s, _ := t.SSID(name)
	return len(s)
}

// PasswordLength returns the byte length of the resolved password, or 0
// when nothing resolves.
func (t *Table) PasswordLength(name string) int {
	p, _ := t.Password(name)
	return len(p)
}

// Has reports whether an entry with exactly this name exists. Unlike the
// getters it never falls back to the default; an absent name is a true
// negative, and an empty name is false.
func (t *Table) Has(name string) bool {
	_, ok := t.Find(name)
	return ok
}

// Names returns the entry names in table order.
func (t *Table) Names() []string {
	names := make([]string, t.Count())
	for i := range names {
		names[i] = t.records[i].Name
	}
	return names
}

// Records returns a copy of the real entries in table order.
func (t *Table) Records() []Credential {
	rs := make([]Credential, t.Count())
	copy(rs, t.records)
	return rs
}

// Validate reports ErrTableTooLarge when no sentinel appears within the
// maximum entry count. A sentinel at index maxEntries still terminates a
// full table. Loaders should treat the error as a configuration error.
func (t *Table) Validate() error {
	n := len(t.records)
	if n > maxEntries+1 {
		n = maxEntries + 1
	}
	for i := 0; i < n; i++ {
		if t.records[i].sentinel() {
			return nil
		}
	}
	return ErrTableTooLarge
}
