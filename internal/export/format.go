package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format is an output encoding for an estimate.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatXLSX  Format = "xlsx"
)

// ParseFormat accepts a format name in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatCSV, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want table, json, csv or xlsx)", s)
}

// Binary reports whether the format must not be written to a terminal.
func (f Format) Binary() bool { return f == FormatXLSX }

// Write encodes e in a file format. FormatTable is rendered by the CLI
// and is rejected here.
func Write(w io.Writer, f Format, e Estimate) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(e)
	case FormatCSV:
		return WriteCSV(w, e)
	case FormatXLSX:
		return WriteXLSX(w, e)
	}
	return fmt.Errorf("format %q is not a file format", f)
}
