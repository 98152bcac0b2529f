package catalog

import (
	"fmt"
	"strings"

	"github.com/ancients-collective/winaudit/internal/probe"
	"github.com/ancients-collective/winaudit/internal/types"
)

// Registry locations shared by several categories.
const (
	keyMultimedia  = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\Multimedia\SystemProfile`
	keyGamesTask   = keyMultimedia + `\Tasks\Games`
	keyAudioTask   = keyMultimedia + `\Tasks\Audio`
	keyKernel      = `SYSTEM\CurrentControlSet\Control\Session Manager\kernel`
	keyMemory      = `SYSTEM\CurrentControlSet\Control\Session Manager\Memory Management`
	keyGraphics    = `SYSTEM\CurrentControlSet\Control\GraphicsDrivers`
	keyFileSystem  = `SYSTEM\CurrentControlSet\Control\FileSystem`
	keyPower       = `SYSTEM\CurrentControlSet\Control\Power`
	keyProcPower   = keyPower + `\PowerSettings\54533251-82be-4824-96c1-47b60b740d00`
	keyDeviceGuard = `SYSTEM\CurrentControlSet\Control\DeviceGuard`
	keyTcpip       = `SYSTEM\CurrentControlSet\Services\Tcpip\Parameters`
	keyCurrentVer  = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`
	keyMouse       = `Control Panel\Mouse`
	keyKeyboard    = `Control Panel\Keyboard`
)

func hklm(path, name string) probe.Query { return probe.Registry(probe.HKLM, path, name) }
func hkcu(path, name string) probe.Query { return probe.Registry(probe.HKCU, path, name) }

func enabledIf(on bool) string {
	if on {
		return "Enabled"
	}
	return "Disabled"
}

// pick returns types.StatusOptimal when good holds and otherwise bad.
func pick(good bool, bad types.CheckStatus) types.CheckStatus {
	if good {
		return types.StatusOptimal
	}
	return bad
}

// is reports whether an optional DWORD was present and equal to want.
func is(n uint64, ok bool, want uint64) bool {
	return ok && n == want
}

// infoDWORD reports a registry number as-is, using def when absent.
func infoDWORD(name, desc string, q probe.Query, def uint64, format string) Rule {
	return Rule{
		Name:        name,
		Description: desc,
		Eval: func(p probe.Prober) Outcome {
			return Outcome{Value: fmt.Sprintf(format, probe.DWORD(p, q, def)), Status: types.StatusInfo}
		},
	}
}

// infoText reports a fact as text, using def when absent.
func infoText(name, desc string, q probe.Query, def string) Rule {
	return Rule{
		Name:        name,
		Description: desc,
		Eval: func(p probe.Prober) Outcome {
			return Outcome{Value: probe.Str(p, q, def), Status: types.StatusInfo}
		},
	}
}

// configuredRule reports whether a tuning value has been written at all.
func configuredRule(name, desc string, q probe.Query) Rule {
	return Rule{
		Name:        name,
		Description: desc,
		Eval: func(p probe.Prober) Outcome {
			if probe.Present(p, q) {
				return Outcome{Value: "Configured", Status: types.StatusInfo}
			}
			return Outcome{Value: "Default", Status: types.StatusInfo}
		},
	}
}

// flagDWORD reports a registry flag as Enabled when equal to onValue,
// without judging it.
func flagDWORD(name, desc string, q probe.Query, onValue uint64) Rule {
	return Rule{
		Name:        name,
		Description: desc,
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, q)
			return Outcome{Value: enabledIf(is(n, ok, onValue)), Status: types.StatusInfo}
		},
	}
}

// toggleDWORD classifies a registry flag that is "on" when equal to onValue.
// wantOn selects which side is optimal; the other side gets miss.
func toggleDWORD(name, desc string, q probe.Query, onValue uint64, wantOn bool, miss types.CheckStatus) Rule {
	return Rule{
		Name:        name,
		Description: desc,
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, q)
			on := is(n, ok, onValue)
			return Outcome{Value: enabledIf(on), Status: pick(on == wantOn, miss)}
		},
	}
}

// serviceRule compares a service's state with the preferred one. A service
// that is not installed is reported as Info.
func serviceRule(name, service, want string, miss types.CheckStatus, desc string) Rule {
	return Rule{
		Name:        name,
		Description: desc,
		Eval: func(p probe.Prober) Outcome {
			state, ok := probe.ServiceState(p, service)
			if !ok {
				return Outcome{Value: "Not Installed", Status: types.StatusInfo}
			}
			return Outcome{Value: state, Status: pick(state == want, miss)}
		},
	}
}

// bytesToMB formats a byte count in mebibytes.
func bytesToMB(n uint64) string {
	return fmt.Sprintf("%d MB", n/1024/1024)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToUpper(s), strings.ToUpper(substr))
}
