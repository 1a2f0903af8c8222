package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
)

// Output formats accepted by --output.
const (
	outputAuto  = ""
	outputTable = "table"
	outputPlain = "plain"
	outputJSON  = "json"
)

// theme is the colour palette for table output.
type theme struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Border  lipgloss.Color
}

func defaultTheme() theme {
	return theme{
		Primary: lipgloss.Color("#7C3AED"),
		Muted:   lipgloss.Color("#6C7086"),
		Success: lipgloss.Color("#A6E3A1"),
		Border:  lipgloss.Color("#45475A"),
	}
}

// styles are bound to the renderer of one writer so colour is only
// emitted where the writer supports it.
type styles struct {
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Border  lipgloss.Style
	Success lipgloss.Style
}

func newStyles(w io.Writer, t theme) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		Header:  r.NewStyle().Bold(true).Foreground(t.Primary).Padding(0, 1),
		Cell:    r.NewStyle().Padding(0, 1),
		Border:  r.NewStyle().Foreground(t.Border),
		Success: r.NewStyle().Foreground(t.Success),
	}
}

// resolveFormat picks table output for terminals and plain output for
// pipes when no format was requested.
func resolveFormat(w io.Writer, requested string) (string, error) {
	switch requested {
	case outputTable, outputPlain, outputJSON:
		return requested, nil
	case outputAuto:
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return outputTable, nil
		}
		return outputPlain, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, plain or json)", requested)
	}
}

// printer writes records in one format.
type printer struct {
	w      io.Writer
	format string
	styles styles
}

func newPrinter(w io.Writer, requested string) (*printer, error) {
	format, err := resolveFormat(w, requested)
	if err != nil {
		return nil, err
	}
	return &printer{w: w, format: format, styles: newStyles(w, defaultTheme())}, nil
}

// rows prints a header and rows, or v as JSON.
func (p *printer) rows(v any, headers []string, rows [][]string) error {
	switch p.format {
	case outputJSON:
		return p.json(v)
	case outputTable:
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(p.styles.Border).
			Headers(headers...).
			Rows(rows...).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return p.styles.Header
				}
				return p.styles.Cell
			})
		_, err := fmt.Fprintln(p.w, t.String())
		return err
	default:
		if _, err := fmt.Fprintln(p.w, strings.Join(headers, "\t")); err != nil {
			return err
		}
		for _, r := range rows {
			if _, err := fmt.Fprintln(p.w, strings.Join(r, "\t")); err != nil {
				return err
			}
		}
		return nil
	}
}

// message prints a confirmation followed by the created record.
func (p *printer) message(msg string, v any, headers []string, row []string) error {
	if p.format == outputJSON {
		return p.json(v)
	}
	if _, err := fmt.Fprintln(p.w, p.styles.Success.Render(msg)); err != nil {
		return err
	}
	return p.rows(v, headers, [][]string{row})
}

func (p *printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
