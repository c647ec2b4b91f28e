package format

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Entry is one formatted amount together with the text it came from.
type Entry struct {
	Input     string `json:"input"`
	Formatted string `json:"formatted"`
}

// ReportFormatter renders a batch of entries.
// Implementations should be pure (no side effects besides deterministic formatting).
type ReportFormatter interface {
	Format(entries []Entry) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// ReportFormatterFunc adapts an ordinary function to ReportFormatter.
type ReportFormatterFunc struct {
	ID string
	F  func([]Entry) ([]byte, error)
}

func (ff ReportFormatterFunc) Format(e []Entry) ([]byte, error) { return ff.F(e) }
func (ff ReportFormatterFunc) Name() string                     { return ff.ID }

// TextFormatter writes one formatted amount per line.
type TextFormatter struct{}

func (TextFormatter) Name() string { return "text" }

func (TextFormatter) Format(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	for _, e := range entries {
		fmt.Fprintln(&buf, e.Formatted)
	}
	return buf.Bytes(), nil
}

// CSVFormatter writes an input,formatted header followed by one row per entry.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(entries []Entry) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"input", "formatted"}); err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := w.Write([]string{e.Input, e.Formatted}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JSONFormatter serializes the entries as a pretty-printed JSON array.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

var builtInFormatters = []ReportFormatter{
	TextFormatter{},
	CSVFormatter{},
	JSONFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"plain":       "text",
	"txt":         "text",
	"json-pretty": "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// GetFormatterByName fetches a registered formatter, or nil.
func GetFormatterByName(name string) ReportFormatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// LookupFormatter is GetFormatterByName with an error listing the choices.
func LookupFormatter(name string) (ReportFormatter, error) {
	if f := GetFormatterByName(name); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
