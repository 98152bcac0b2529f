//go:build windows

package probe

// System reads facts from the live Windows registry, WMI and the service
// control manager.
type System struct{}

// NewSystem returns the live Prober for this platform.
func NewSystem() Prober {
	return System{}
}

// Read dispatches q to the matching backend. Invalid queries are absent.
func (System) Read(q Query) (Value, bool) {
	if Validate(q) != nil {
		return Value{}, false
	}
	switch q.Kind {
	case KindRegistry:
		return readRegistry(q)
	case KindWMI:
		return readWMI(q)
	case KindService:
		return readService(q.Path)
	default:
		return Value{}, false
	}
}
