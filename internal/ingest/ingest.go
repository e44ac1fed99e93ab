// Package ingest reads a folder of POS export files into one merged table.
// The exports carry an .xls extension but are tab-delimited text, with two
// lines of boilerplate above the header row.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"

	"github.com/jamil1016/dailyreport/internal/table"
)

// Options control scanning and parsing of export files.
type Options struct {
	Extension  string   // file suffix to match, e.g. ".xls"
	Encodings  []string // decoder names tried in order per file
	HeaderLine int      // zero-based line holding the header row
}

// DefaultOptions matches the POS terminal export format.
func DefaultOptions() Options {
	return Options{
		Extension:  ".xls",
		Encodings:  []string{"gbk", "utf-8"},
		HeaderLine: 2,
	}
}

// FileError records one export file that could not be ingested.
type FileError struct {
	Name string
	Err  error
}

func (e FileError) Error() string { return fmt.Sprintf("%s: %v", e.Name, e.Err) }

// Scan returns the names of export files in dir, in directory-listing
// order. Subdirectories are skipped; the suffix match is case-insensitive.
func Scan(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), strings.ToLower(ext)) {
			continue
		}
		files = append(files, e.Name())
	}
	return files, nil
}

// Merge ingests every export file in dir into one table. Files that fail to
// decode or parse are collected in errs and skipped; the table holds the
// rows of the files that loaded, in scan order. A table with zero rows is a
// normal outcome for the caller to report, not an error.
func Merge(dir string, opts Options) (merged *table.Table, errs []FileError, err error) {
	names, err := Scan(dir, opts.Extension)
	if err != nil {
		return nil, nil, err
	}
	merged = table.New()
	for _, name := range names {
		t, err := readFile(filepath.Join(dir, name), opts)
		if err != nil {
			errs = append(errs, FileError{Name: name, Err: err})
			continue
		}
		merged.AppendTable(t)
	}
	return merged, errs, nil
}

func readFile(path string, opts Options) (*table.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := decode(data, opts.Encodings)
	if err != nil {
		return nil, err
	}
	return parse(text, opts.HeaderLine)
}

// parse splits tab-delimited text into a table. Lines above headerLine are
// discarded as boilerplate. Rows shorter than the header are padded with
// blanks; a longer row is a parse error.
func parse(text string, headerLine int) (*table.Table, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) <= headerLine {
		return nil, fmt.Errorf("expected header on line %d, file has %d lines", headerLine+1, len(lines))
	}
	header := strings.Split(lines[headerLine], "\t")
	t := table.New(header...)
	for n, line := range lines[headerLine+1:] {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) > len(header) {
			return nil, fmt.Errorf("line %d: %d fields, header has %d columns", headerLine+n+2, len(fields), len(header))
		}
		for len(fields) < len(header) {
			fields = append(fields, "")
		}
		if err := t.AppendRow(fields); err != nil {
			return nil, fmt.Errorf("line %d: %w", headerLine+n+2, err)
		}
	}
	return t, nil
}

// decode tries each named decoder in order until one accepts the bytes.
func decode(data []byte, encodings []string) (string, error) {
	if len(encodings) == 0 {
		return "", fmt.Errorf("no encodings configured")
	}
	var lastErr error
	for _, name := range encodings {
		dec, err := decoderFor(name)
		if err != nil {
			return "", err
		}
		text, err := dec(data)
		if err == nil {
			return text, nil
		}
		lastErr = fmt.Errorf("%s: %w", name, err)
	}
	return "", lastErr
}

func decoderFor(name string) (func([]byte) (string, error), error) {
	switch strings.ToLower(name) {
	case "gbk":
		return decodeGBK, nil
	case "utf-8", "utf8":
		return decodeUTF8, nil
	}
	return nil, fmt.Errorf("unknown encoding %q", name)
}

func decodeGBK(data []byte) (string, error) {
	out, _, err := transform.Bytes(simplifiedchinese.GBK.NewDecoder(), data)
	if err != nil {
		return "", err
	}
	// The decoder substitutes U+FFFD for bytes outside GBK instead of
	// failing, so any substitution marks the file as not GBK.
	if strings.ContainsRune(string(out), utf8.RuneError) {
		return "", fmt.Errorf("invalid GBK byte sequence")
	}
	return string(out), nil
}

func decodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("invalid UTF-8 byte sequence")
	}
	return string(data), nil
}
