package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/finboard/forecast/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport writes the report in the named format to a timestamped file in dir
// and returns its path. "all" writes every registered format.
func GenerateReport(report *domain.ProjectionReport, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var written []string
		for _, f := range builtInFormatters {
			name, err := WriteFormatted(f, report, dir)
			if err != nil {
				return written, fmt.Errorf("%s: %w", f.Name(), err)
			}
			written = append(written, name)
		}
		return written, nil
	}

	f, err := lookup(format)
	if err != nil {
		return nil, err
	}
	name, err := WriteFormatted(f, report, dir)
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

// Render formats the report and writes it to w.
func Render(w io.Writer, report *domain.ProjectionReport, format string) error {
	f, err := lookup(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func lookup(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	// enrich error with available formatters and aliases
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// SaveSnapshot writes a snapshot document as YAML.
func SaveSnapshot(snapshot *domain.Snapshot, filename string) error {
	b, err := yaml.Marshal(snapshot)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
