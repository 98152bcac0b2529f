package probe

import (
	"fmt"
	"regexp"
	"strings"
)

// Limits on identifiers passed to the operating system.
const (
	// MaxServiceNameLength matches the SCM limit on service key names.
	MaxServiceNameLength = 256

	// MaxRegistryKeyLength is the registry limit for one key segment.
	MaxRegistryKeyLength = 255

	// MaxRegistryValueNameLength is the registry limit for value names.
	MaxRegistryValueNameLength = 16383
)

var (
	wmiIdentPattern    = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	serviceNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_@.\-]+$`)
)

// Validate reports why q must not be sent to the operating system.
// WMI identifiers are interpolated into WQL, so they are restricted to
// alphanumerics and underscores.
func Validate(q Query) error {
	switch q.Kind {
	case KindRegistry:
		return validateRegistry(q)
	case KindWMI:
		return validateWMI(q)
	case KindService:
		return validateServiceName(q.Path)
	default:
		return fmt.Errorf("unknown query kind %d", q.Kind)
	}
}

func validateRegistry(q Query) error {
	if q.Hive != HKLM && q.Hive != HKCU {
		return fmt.Errorf("unsupported registry hive %d", q.Hive)
	}
	if q.Path == "" {
		return fmt.Errorf("registry path must not be empty")
	}
	if strings.HasPrefix(q.Path, `\`) || strings.HasSuffix(q.Path, `\`) {
		return fmt.Errorf("registry path %q must not start or end with a backslash", q.Path)
	}
	for _, seg := range strings.Split(q.Path, `\`) {
		if seg == "" {
			return fmt.Errorf("empty segment in registry path %q", q.Path)
		}
		if len(seg) > MaxRegistryKeyLength {
			return fmt.Errorf("registry key segment too long (%d > %d)", len(seg), MaxRegistryKeyLength)
		}
	}
	if hasControl(q.Path) || hasControl(q.Name) {
		return fmt.Errorf("control characters not allowed in registry query %q", q.String())
	}
	if len(q.Name) > MaxRegistryValueNameLength {
		return fmt.Errorf("registry value name too long (%d > %d)", len(q.Name), MaxRegistryValueNameLength)
	}
	return nil
}

func validateWMI(q Query) error {
	ns := q.Namespace
	if ns == "" {
		ns = DefaultWMINamespace
	}
	for _, seg := range strings.Split(ns, `\`) {
		if !wmiIdentPattern.MatchString(seg) {
			return fmt.Errorf("invalid WMI namespace %q", ns)
		}
	}
	if !wmiIdentPattern.MatchString(q.Path) {
		return fmt.Errorf("invalid WMI class %q", q.Path)
	}
	if q.Name != "" && !wmiIdentPattern.MatchString(q.Name) {
		return fmt.Errorf("invalid WMI property %q", q.Name)
	}
	return nil
}

// validateServiceName checks that a service name is safe to look up.
func validateServiceName(name string) error {
	if name == "" {
		return fmt.Errorf("service name must not be empty")
	}
	if len(name) > MaxServiceNameLength {
		return fmt.Errorf("service name too long (%d > %d)", len(name), MaxServiceNameLength)
	}
	if !serviceNamePattern.MatchString(name) {
		return fmt.Errorf("invalid service name %q: must match [a-zA-Z0-9_@.-]", name)
	}
	return nil
}

func hasControl(s string) bool {
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return true
		}
	}
	return false
}
