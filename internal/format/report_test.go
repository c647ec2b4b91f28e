package format

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []Entry {
	return []Entry{
		{Input: "1.1", Formatted: "1.10"},
		{Input: "-1.23456789", Formatted: "-1.24"},
	}
}

func TestTextFormatter(t *testing.T) {
	out, err := TextFormatter{}.Format(sampleEntries())
	require.NoError(t, err)
	assert.Equal(t, "1.10\n-1.24\n", string(out))
}

func TestCSVFormatter(t *testing.T) {
	out, err := CSVFormatter{}.Format(sampleEntries())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "input,formatted", lines[0])
	assert.Equal(t, "-1.23456789,-1.24", lines[2])
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(sampleEntries())
	require.NoError(t, err)

	var got []Entry
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, sampleEntries(), got)

	empty, err := JSONFormatter{}.Format(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(empty))
}

func TestGetFormatterByName(t *testing.T) {
	assert.Equal(t, "text", GetFormatterByName("plain").Name())
	assert.Equal(t, "text", GetFormatterByName(" TXT ").Name())
	assert.Equal(t, "json", GetFormatterByName("json-pretty").Name())
	assert.Equal(t, "csv", GetFormatterByName("csv").Name())
	assert.Nil(t, GetFormatterByName("xml"))

	_, err := LookupFormatter("xml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "csv, json, text")
}

func TestReportFormatterFunc(t *testing.T) {
	ff := ReportFormatterFunc{ID: "count", F: func(e []Entry) ([]byte, error) {
		return []byte{byte('0' + len(e))}, nil
	}}
	out, err := ff.Format(sampleEntries())
	require.NoError(t, err)
	assert.Equal(t, "2", string(out))
	assert.Equal(t, "count", ff.Name())
}
