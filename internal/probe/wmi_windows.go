//go:build windows

package probe

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// sFalse is returned by CoInitializeEx when COM is already initialized on
// the thread.
const sFalse = 0x00000001

// readWMI runs "SELECT <property> FROM <class>" and returns the property of
// the first instance. COM is initialized per call on a locked OS thread, so
// concurrent callers never share apartment state.
func readWMI(q Query) (Value, bool) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED); err != nil {
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) || (oleErr.Code() != ole.S_OK && oleErr.Code() != sFalse) {
			return Value{}, false
		}
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("WbemScripting.SWbemLocator")
	if err != nil {
		return Value{}, false
	}
	defer unknown.Release()

	locator, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return Value{}, false
	}
	defer locator.Release()

	ns := q.Namespace
	if ns == "" {
		ns = DefaultWMINamespace
	}
	serviceRaw, err := oleutil.CallMethod(locator, "ConnectServer", nil, ns)
	if err != nil {
		return Value{}, false
	}
	service := serviceRaw.ToIDispatch()
	defer serviceRaw.Clear()

	selected := q.Name
	if selected == "" {
		selected = "*"
	}
	resultRaw, err := oleutil.CallMethod(service, "ExecQuery", fmt.Sprintf("SELECT %s FROM %s", selected, q.Path))
	if err != nil {
		return Value{}, false
	}
	result := resultRaw.ToIDispatch()
	defer resultRaw.Clear()

	countVar, err := oleutil.GetProperty(result, "Count")
	if err != nil {
		return Value{}, false
	}
	count := countVar.Val
	_ = countVar.Clear()

	if q.Name == "" {
		return Number(uint64(count)), true
	}
	if count == 0 {
		return Value{}, false
	}

	itemRaw, err := oleutil.CallMethod(result, "ItemIndex", 0)
	if err != nil {
		return Value{}, false
	}
	item := itemRaw.ToIDispatch()
	defer itemRaw.Clear()

	prop, err := oleutil.GetProperty(item, q.Name)
	if err != nil {
		return Value{}, false
	}
	defer prop.Clear()

	return fromVariant(prop.Value())
}

// fromVariant converts the Go form of a VARIANT into a Value. WMI reports
// uint64 properties as strings, so numeric strings stay strings and callers
// parse them with Value.Uint.
func fromVariant(v interface{}) (Value, bool) {
	switch x := v.(type) {
	case nil:
		return Value{}, false
	case string:
		return Text(x), true
	case bool:
		return Text(strconv.FormatBool(x)), true
	case uint8:
		return Number(uint64(x)), true
	case uint16:
		return Number(uint64(x)), true
	case uint32:
		return Number(uint64(x)), true
	case uint64:
		return Number(x), true
	case int8:
		return signed(int64(x))
	case int16:
		return signed(int64(x))
	case int32:
		return signed(int64(x))
	case int64:
		return signed(x)
	default:
		return Value{}, false
	}
}

func signed(n int64) (Value, bool) {
	if n < 0 {
		return Text(strconv.FormatInt(n, 10)), true
	}
	return Number(uint64(n)), true
}
