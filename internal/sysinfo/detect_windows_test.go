//go:build windows

package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHardwareQuery_NamesWMIClass(t *testing.T) {
	var dst []win32ComputerSystem
	assert.Equal(t, "SELECT Manufacturer, Model FROM Win32_ComputerSystem", hardwareQuery(&dst))
}

func TestWindowsDetector_DetectHardware(t *testing.T) {
	hw, err := NewDetector().DetectHardware()
	if err != nil {
		t.Skipf("WMI unavailable: %v", err)
	}
	assert.NotEmpty(t, hw.Manufacturer+hw.Model)
}
