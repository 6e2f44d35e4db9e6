package output

import (
	"io"

	"github.com/rasmushaa/renting-vs-owning/internal/domain"
)

// consoleFormats are written to a stream instead of a file.
var consoleFormats = map[string]bool{
	"console":      true,
	"console-lite": true,
	"markdown":     true,
}

// IsConsoleFormat reports whether format is meant for a terminal.
func IsConsoleFormat(format string) bool {
	return consoleFormats[NormalizeFormatName(format)]
}

// GenerateReport writes results in the given format to a timestamped file in dir
// and returns the file names. "all" writes every file format.
func GenerateReport(results *domain.ScenarioComparison, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, name := range AvailableFormatterNames() {
			if consoleFormats[name] {
				continue
			}
			file, err := WriteFormatted(GetFormatterByName(name), results, dir)
			if err != nil {
				return files, err
			}
			files = append(files, file)
		}
		return files, nil
	}

	f, err := LookupFormatter(format)
	if err != nil {
		return nil, err
	}
	file, err := WriteFormatted(f, results, dir)
	if err != nil {
		return nil, err
	}
	return []string{file}, nil
}

// WriteReport formats results and copies them to w.
func WriteReport(w io.Writer, results *domain.ScenarioComparison, format string) error {
	f, err := LookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(results)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
