package probe

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const gfxPath = `SYSTEM\CurrentControlSet\Control\GraphicsDrivers`

func TestQuery_String(t *testing.T) {
	tests := []struct {
		q    Query
		want string
	}{
		{Registry(HKLM, gfxPath, "HwSchMode"), `reg:HKLM\SYSTEM\CurrentControlSet\Control\GraphicsDrivers!HwSchMode`},
		{Registry(HKCU, `Control Panel\Mouse`, "MouseSpeed"), `reg:HKCU\Control Panel\Mouse!MouseSpeed`},
		{WMI("Win32_Processor", "Name"), `wmi:root\CIMV2:Win32_Processor.Name`},
		{WMIIn(`root\WMI`, "MSAcpi_ThermalZoneTemperature", "CurrentTemperature"), `wmi:root\WMI:MSAcpi_ThermalZoneTemperature.CurrentTemperature`},
		{WMICount("Win32_Battery"), `wmi:root\CIMV2:Win32_Battery#count`},
		{Service("WinDefend"), "service:WinDefend"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.String())
		})
	}
}

func TestValue_Conversions(t *testing.T) {
	n := Number(0xFFFFFFFF)
	assert.True(t, n.IsNumber())
	assert.Equal(t, "4294967295", n.String())
	got, ok := n.Uint()
	assert.True(t, ok)
	assert.Equal(t, uint64(0xFFFFFFFF), got)

	s := Text(" 38 ")
	assert.False(t, s.IsNumber())
	got, ok = s.Uint()
	assert.True(t, ok)
	assert.Equal(t, uint64(38), got)

	got, ok = Text("0x1A").Uint()
	assert.True(t, ok)
	assert.Equal(t, uint64(26), got)

	_, ok = Text("High").Uint()
	assert.False(t, ok)
}

func TestHelpers_DefaultOnAbsence(t *testing.T) {
	q := Registry(HKLM, gfxPath, "TdrLevel")
	assert.Equal(t, uint64(3), DWORD(Null{}, q, 3))
	assert.Equal(t, "Medium", Str(Null{}, q, "Medium"))
	assert.False(t, Present(Null{}, q))
	_, ok := DWORDOpt(Null{}, q)
	assert.False(t, ok)
	_, ok = ServiceState(Null{}, "WinDefend")
	assert.False(t, ok)
}

func TestHelpers_PresentValues(t *testing.T) {
	q := Registry(HKLM, gfxPath, "TdrLevel")
	p := Static{}.Set(q, Number(0)).Set(Service("WinDefend"), Text(StateRunning))

	assert.Equal(t, uint64(0), DWORD(p, q, 3))
	assert.Equal(t, "0", Str(p, q, "x"))
	assert.True(t, Present(p, q))
	state, ok := ServiceState(p, "WinDefend")
	assert.True(t, ok)
	assert.Equal(t, StateRunning, state)
}

func TestDWORD_UnparsableStringFallsBack(t *testing.T) {
	q := Registry(HKCU, `Control Panel\Mouse`, "MouseSensitivity")
	p := Static{}.Set(q, Text("fast"))
	assert.Equal(t, uint64(10), DWORD(p, q, 10))
}

func TestProberFunc(t *testing.T) {
	var seen Query
	p := ProberFunc(func(q Query) (Value, bool) {
		seen = q
		return Text("x"), true
	})
	v, ok := p.Read(Service("Spooler"))
	assert.True(t, ok)
	assert.Equal(t, "x", v.String())
	assert.Equal(t, "Spooler", seen.Path)
}

func TestWithLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	q := Service("Audiosrv")
	p := WithLogging(Static{}.Set(q, Text(StateRunning)), zap.New(core))

	_, ok := p.Read(q)
	assert.True(t, ok)
	_, ok = p.Read(Service("Missing"))
	assert.False(t, ok)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "fact read", entries[0].Message)
	assert.Equal(t, "fact absent", entries[1].Message)
	assert.Equal(t, "service:Missing", entries[1].ContextMap()["query"])
}

func TestWithLogging_NilLogger(t *testing.T) {
	base := Null{}
	assert.Equal(t, Prober(base), WithLogging(base, nil))
}

func TestRecorder_RecordsOnlyPresentFacts(t *testing.T) {
	hit := Registry(HKLM, gfxPath, "HwSchMode")
	str := Registry(HKCU, `Control Panel\Keyboard`, "KeyboardDelay")
	r := NewRecorder(Static{}.Set(hit, Number(2)).Set(str, Text("1")))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Read(hit)
			r.Read(str)
			r.Read(Service("absent"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 2, r.Len())
	snap := r.Snapshot("host-a")
	assert.Equal(t, "host-a", snap.Host)
	assert.Equal(t, uint64(2), snap.Values[hit.String()])
	assert.Equal(t, "1", snap.Values[str.String()])
}

func TestSnapshot_RoundTrip(t *testing.T) {
	num := Registry(HKLM, `SOFTWARE\Microsoft\Windows NT\CurrentVersion\Multimedia\SystemProfile`, "NetworkThrottlingIndex")
	str := Registry(HKCU, `Control Panel\Mouse`, "MouseSpeed")
	svc := Service("DiagTrack")

	r := NewRecorder(Static{}.
		Set(num, Number(0xFFFFFFFF)).
		Set(str, Text("0")).
		Set(svc, Text(StateStopped)))
	r.Read(num)
	r.Read(str)
	r.Read(svc)

	path := filepath.Join(t.TempDir(), "snap.yaml")
	require.NoError(t, WriteSnapshot(path, r.Snapshot("rig")))

	loaded, snap, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, "rig", snap.Host)

	v, ok := loaded.Read(num)
	require.True(t, ok)
	assert.True(t, v.IsNumber())
	assert.Equal(t, "4294967295", v.String())

	v, ok = loaded.Read(str)
	require.True(t, ok)
	assert.False(t, v.IsNumber(), "quoted numeric strings stay strings")
	assert.Equal(t, "0", v.String())

	state, ok := ServiceState(loaded, "DiagTrack")
	require.True(t, ok)
	assert.Equal(t, StateStopped, state)
}

func TestLoadSnapshot_Errors(t *testing.T) {
	_, _, err := LoadSnapshot(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	snap := &Snapshot{Values: map[string]interface{}{"reg:HKLM\\A!B": -1}}
	_, err = snap.Static()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "negative"))

	snap = &Snapshot{Values: map[string]interface{}{"reg:HKLM\\A!B": []interface{}{1}}}
	_, err = snap.Static()
	assert.Error(t, err)
}

func TestNewSystem_NeverPanics(t *testing.T) {
	p := NewSystem()
	for _, q := range []Query{
		Registry(HKLM, gfxPath, "HwSchMode"),
		WMI("Win32_Processor", "Name"),
		WMI("Win32_Processor; DROP", "Name"),
		Service("bad name"),
	} {
		assert.NotPanics(t, func() { p.Read(q) })
	}
}
