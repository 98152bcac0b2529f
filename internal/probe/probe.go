// Package probe reads single configuration facts from the operating system.
//
// A Prober never fails: a missing key, a denied read, a malformed value or an
// unsupported platform all come back as "absent". Callers substitute their
// own defaults.
package probe

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind selects the configuration source a Query reads from.
type Kind int

const (
	// KindRegistry reads a registry value.
	KindRegistry Kind = iota + 1
	// KindWMI reads a WMI class property.
	KindWMI
	// KindService reads the state of a Windows service.
	KindService
)

// Hive is a registry root key.
type Hive int

const (
	// HKLM is HKEY_LOCAL_MACHINE.
	HKLM Hive = iota + 1
	// HKCU is HKEY_CURRENT_USER.
	HKCU
)

func (h Hive) String() string {
	switch h {
	case HKLM:
		return "HKLM"
	case HKCU:
		return "HKCU"
	default:
		return "HK?"
	}
}

// DefaultWMINamespace is used when a WMI query names no namespace.
const DefaultWMINamespace = `root\CIMV2`

// Query identifies one configuration fact.
//
// For registry queries Path is the key and Name the value; an empty Name asks
// whether the key exists. For WMI queries Path is the class and Name the
// property; an empty Name asks for the instance count. For service queries
// Path is the service name.
type Query struct {
	Kind      Kind
	Hive      Hive
	Namespace string
	Path      string
	Name      string
}

// Registry builds a registry value query.
func Registry(hive Hive, path, name string) Query {
	return Query{Kind: KindRegistry, Hive: hive, Path: path, Name: name}
}

// WMI builds a query for a property of the first instance of class in
// the default namespace.
func WMI(class, property string) Query {
	return WMIIn(DefaultWMINamespace, class, property)
}

// WMIIn builds a WMI property query in an explicit namespace.
func WMIIn(namespace, class, property string) Query {
	return Query{Kind: KindWMI, Namespace: namespace, Path: class, Name: property}
}

// WMICount builds a query for the number of instances of class.
func WMICount(class string) Query {
	return WMI(class, "")
}

// Service builds a service state query.
func Service(name string) Query {
	return Query{Kind: KindService, Path: name}
}

// String renders the query as a stable key. Snapshots and log lines use it.
func (q Query) String() string {
	switch q.Kind {
	case KindRegistry:
		return fmt.Sprintf(`reg:%s\%s!%s`, q.Hive, q.Path, q.Name)
	case KindWMI:
		ns := q.Namespace
		if ns == "" {
			ns = DefaultWMINamespace
		}
		if q.Name == "" {
			return fmt.Sprintf("wmi:%s:%s#count", ns, q.Path)
		}
		return fmt.Sprintf("wmi:%s:%s.%s", ns, q.Path, q.Name)
	case KindService:
		return "service:" + q.Path
	default:
		return "invalid:" + q.Path
	}
}

// Value is a fact read by a Prober: either a number or a string.
type Value struct {
	num   uint64
	str   string
	isNum bool
}

// Number wraps an integer fact such as a REG_DWORD.
func Number(n uint64) Value { return Value{num: n, isNum: true} }

// Text wraps a string fact.
func Text(s string) Value { return Value{str: s} }

// IsNumber reports whether the value was read as an integer.
func (v Value) IsNumber() bool { return v.isNum }

// Uint returns the value as an integer. Strings are parsed as decimal or
// 0x-prefixed hex.
func (v Value) Uint() (uint64, bool) {
	if v.isNum {
		return v.num, true
	}
	n, err := strconv.ParseUint(strings.TrimSpace(v.str), 0, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// String returns the value as text. Numbers are formatted in decimal.
func (v Value) String() string {
	if v.isNum {
		return strconv.FormatUint(v.num, 10)
	}
	return v.str
}

// Prober reads configuration facts. Read returns false when the fact is
// absent for any reason.
type Prober interface {
	Read(q Query) (Value, bool)
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(q Query) (Value, bool)

// Read calls f(q).
func (f ProberFunc) Read(q Query) (Value, bool) { return f(q) }

// Service states reported by KindService queries.
const (
	StateRunning = "Running"
	StateStopped = "Stopped"
	StatePaused  = "Paused"
	StateUnknown = "Unknown"
)

// DWORDOpt reads an integer fact. A string that does not parse is absent.
func DWORDOpt(p Prober, q Query) (uint64, bool) {
	v, ok := p.Read(q)
	if !ok {
		return 0, false
	}
	return v.Uint()
}

// DWORD reads an integer fact, returning def when it is absent.
func DWORD(p Prober, q Query, def uint64) uint64 {
	if n, ok := DWORDOpt(p, q); ok {
		return n
	}
	return def
}

// Str reads a fact as text, returning def when it is absent.
func Str(p Prober, q Query, def string) string {
	if v, ok := p.Read(q); ok {
		return v.String()
	}
	return def
}

// Present reports whether the fact exists at all.
func Present(p Prober, q Query) bool {
	_, ok := p.Read(q)
	return ok
}

// ServiceState returns the state of a service, or false if the service is
// not installed or cannot be queried.
func ServiceState(p Prober, name string) (string, bool) {
	v, ok := p.Read(Service(name))
	if !ok {
		return "", false
	}
	return v.String(), true
}
