package output

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLFormatter_LineCount(t *testing.T) {
	r := newTestResults()
	var buf bytes.Buffer
	require.NoError(t, (&JSONLFormatter{}).Write(&buf, r))

	scanner := bufio.NewScanner(&buf)
	lines := 0
	for scanner.Scan() {
		lines++
	}
	assert.Equal(t, r.TotalChecks()+1, lines)
}

func TestJSONLFormatter_HeaderAndChecks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONLFormatter{}).Write(&buf, newTestResults()))

	scanner := bufio.NewScanner(&buf)
	require.True(t, scanner.Scan())

	var header map[string]interface{}
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &header))
	assert.Equal(t, "header", header["type"])
	assert.Equal(t, testRunID, header["run_id"])
	assert.Equal(t, "2026-01-15T10:30:00Z", header["timestamp"])
	summary, ok := header["summary"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(5), summary["total"])
	assert.Equal(t, float64(2), summary["info"])

	var categories []string
	for scanner.Scan() {
		var line struct {
			Type     string `json:"type"`
			Category string `json:"category"`
			Check    struct {
				Name   string `json:"name"`
				Status string `json:"status"`
			} `json:"check"`
		}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		assert.Equal(t, "check", line.Type)
		assert.NotEmpty(t, line.Check.Name)
		categories = append(categories, line.Category)
	}
	assert.Equal(t, []string{"Latency", "Latency", "Security", "Security", "Security"}, categories)
}
