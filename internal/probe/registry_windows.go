//go:build windows

package probe

import (
	"encoding/hex"
	"strings"

	"golang.org/x/sys/windows/registry"
)

func readRegistry(q Query) (Value, bool) {
	root := registry.LOCAL_MACHINE
	if q.Hive == HKCU {
		root = registry.CURRENT_USER
	}

	k, err := registry.OpenKey(root, q.Path, registry.QUERY_VALUE)
	if err != nil {
		return Value{}, false
	}
	defer k.Close()

	if q.Name == "" {
		return Text(""), true
	}

	_, valtype, err := k.GetValue(q.Name, nil)
	if err != nil {
		return Value{}, false
	}

	switch valtype {
	case registry.DWORD, registry.QWORD:
		n, _, err := k.GetIntegerValue(q.Name)
		if err != nil {
			return Value{}, false
		}
		return Number(n), true
	case registry.SZ, registry.EXPAND_SZ:
		s, _, err := k.GetStringValue(q.Name)
		if err != nil {
			return Value{}, false
		}
		return Text(s), true
	case registry.MULTI_SZ:
		ss, _, err := k.GetStringsValue(q.Name)
		if err != nil {
			return Value{}, false
		}
		return Text(strings.Join(ss, ";")), true
	case registry.BINARY:
		b, _, err := k.GetBinaryValue(q.Name)
		if err != nil {
			return Value{}, false
		}
		return Text(hex.EncodeToString(b)), true
	default:
		return Value{}, false
	}
}
