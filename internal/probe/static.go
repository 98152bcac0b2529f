package probe

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Null is a Prober for which every fact is absent.
type Null struct{}

// Read always reports absence.
func (Null) Read(Query) (Value, bool) { return Value{}, false }

// Static serves facts from memory, keyed by Query.String().
// It is safe for concurrent reads once populated.
type Static map[string]Value

// Set stores v for q and returns s for chaining.
func (s Static) Set(q Query, v Value) Static {
	s[q.String()] = v
	return s
}

// Read returns the stored value for q.
func (s Static) Read(q Query) (Value, bool) {
	v, ok := s[q.String()]
	return v, ok
}

// Snapshot is the on-disk form of a set of recorded facts.
type Snapshot struct {
	// Taken is when the facts were recorded.
	Taken time.Time `yaml:"taken"`

	// Host is the machine the facts were recorded on.
	Host string `yaml:"host,omitempty"`

	// Values maps Query.String() keys to integers or strings.
	Values map[string]interface{} `yaml:"values"`
}

// LoadSnapshot reads a YAML snapshot into a Static prober.
func LoadSnapshot(path string) (Static, *Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read snapshot %q: %w", path, err)
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, nil, fmt.Errorf("failed to parse YAML in %q: %w", path, err)
	}
	s, err := snap.Static()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, &snap, nil
}

// Static converts the snapshot values into a Prober.
func (snap *Snapshot) Static() (Static, error) {
	s := make(Static, len(snap.Values))
	for key, raw := range snap.Values {
		switch v := raw.(type) {
		case int:
			if v < 0 {
				return nil, fmt.Errorf("value for %q is negative", key)
			}
			s[key] = Number(uint64(v))
		case int64:
			if v < 0 {
				return nil, fmt.Errorf("value for %q is negative", key)
			}
			s[key] = Number(uint64(v))
		case uint64:
			s[key] = Number(v)
		case string:
			s[key] = Text(v)
		case bool:
			s[key] = Text(fmt.Sprint(v))
		default:
			return nil, fmt.Errorf("unsupported value type %T for %q", raw, key)
		}
	}
	return s, nil
}

// WriteSnapshot writes values to path as YAML.
func WriteSnapshot(path string, snap *Snapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot %q: %w", path, err)
	}
	return nil
}
