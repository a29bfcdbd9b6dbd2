package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"chucknorris/internal/app"
	"chucknorris/internal/domain"
)

// writeOne prints a single quip. Text output is the bare quip line.
func writeOne(w io.Writer, format string, q domain.Quip) error {
	switch format {
	case app.FormatText:
		_, err := fmt.Fprintln(w, q.Text)
		return err
	default:
		return encode(w, format, q)
	}
}

// writeList prints quips in order. Text output prefixes each line with the
// index and fingerprint.
func writeList(w io.Writer, format string, qs []domain.Quip) error {
	switch format {
	case app.FormatText:
		for _, q := range qs {
			if _, err := fmt.Fprintf(w, "%d %s %s\n", q.Index, q.Fingerprint, q.Text); err != nil {
				return err
			}
		}
		return nil
	default:
		return encode(w, format, qs)
	}
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case app.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case app.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w %q", domain.ErrUnknownFormat, format)
	}
}
