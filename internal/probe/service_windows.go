//go:build windows

package probe

import (
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/svc"
)

// readService queries a service with the minimum rights needed, so it
// works without elevation.
func readService(name string) (Value, bool) {
	scm, err := windows.OpenSCManager(nil, nil, windows.SC_MANAGER_CONNECT)
	if err != nil {
		return Value{}, false
	}
	defer windows.CloseServiceHandle(scm)

	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return Value{}, false
	}
	h, err := windows.OpenService(scm, namePtr, windows.SERVICE_QUERY_STATUS)
	if err != nil {
		return Value{}, false
	}
	defer windows.CloseServiceHandle(h)

	var st windows.SERVICE_STATUS
	if err := windows.QueryServiceStatus(h, &st); err != nil {
		return Value{}, false
	}
	return Text(stateName(svc.State(st.CurrentState))), true
}

func stateName(s svc.State) string {
	switch s {
	case svc.Running:
		return StateRunning
	case svc.Stopped:
		return StateStopped
	case svc.Paused:
		return StatePaused
	default:
		return StateUnknown
	}
}
