//go:build !windows

package probe

// NewSystem returns the live Prober for this platform. Outside Windows there
// is no registry, WMI or service manager, so every fact is absent.
func NewSystem() Prober {
	return Null{}
}
