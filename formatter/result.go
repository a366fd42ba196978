package formatter

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/gnoswap-labs/scover/analyzer"
	"github.com/gnoswap-labs/scover/internal/pattern"
)

const resultTemplate = `{{title "Expression:"}} {{.Expression}}
{{title "Variables:"}} {{join .Variables ", "}}

{{legend}}
{{- if .ShowFull}}

{{title (printf "Full Table (%d patterns)" (len .Full))}}
{{table .Variables .Full .FullMarks .WithResult}}
{{- end}}

{{title (printf "Minimal Test Cases (n+1 = %d cases)" .Target)}}
{{table .Variables .Minimal .MinimalMarks .WithResult}}
{{- if .Padded}}
{{note "* added only to reach n+1 cases"}}
{{- end}}
{{- if .Missing}}
{{warning "Not covered:"}} {{join .Missing ", "}}
{{- end}}

{{reachability .Reach}}
{{summary (len .Full)}}
`

// resultData is what the result template sees.
type resultData struct {
	*analyzer.Result
	ShowFull     bool
	WithResult   bool
	FullMarks    []string
	MinimalMarks []string
}

// Formatter renders analysis results as text.
type Formatter struct {
	styles   *palette
	tmpl     *template.Template
	showFull bool
}

// Options controls text output.
type Options struct {
	Color    bool // emit ANSI colors
	HideFull bool // print only the minimal table
}

func New(opts Options) *Formatter {
	p := newPalette(opts.Color)
	funcMap := template.FuncMap{
		"title":        p.title.Sprint,
		"warning":      p.warning.Sprint,
		"note":         p.note.Sprint,
		"join":         strings.Join,
		"legend":       p.legend,
		"table":        p.table,
		"reachability": p.reachability,
		"summary":      summary,
	}
	return &Formatter{
		styles:   p,
		tmpl:     template.Must(template.New("result").Funcs(funcMap).Parse(resultTemplate)),
		showFull: !opts.HideFull,
	}
}

// WriteResult renders res to w.
func (f *Formatter) WriteResult(w io.Writer, res *analyzer.Result) error {
	padded := make(map[int]bool, len(res.Padded))
	for _, i := range res.Padded {
		padded[i] = true
	}
	fullMarks := make([]string, len(res.Full))
	for i := range res.Full {
		if padded[i] {
			fullMarks[i] = "*"
		}
	}
	minimalMarks := make([]string, len(res.Minimal))
	for k, i := range res.Indices {
		if k < len(minimalMarks) && padded[i] {
			minimalMarks[k] = "*"
		}
	}

	data := resultData{
		Result:       res,
		ShowFull:     f.showFull,
		WithResult:   res.Variant == analyzer.VariantExtended,
		FullMarks:    fullMarks,
		MinimalMarks: minimalMarks,
	}
	return f.tmpl.Execute(w, data)
}

// FormatResult renders res as a string.
func (f *Formatter) FormatResult(res *analyzer.Result) string {
	var buf bytes.Buffer
	if err := f.WriteResult(&buf, res); err != nil {
		return fmt.Sprintf("Error formatting result: %v", err)
	}
	return buf.String()
}

func summary(n int) string {
	return fmt.Sprintf("The full table shows %d unique evaluation patterns for your expression.", n)
}

// table renders rows with 1-based row numbers. marks[i], if set, is
// appended to the row number of rows[i].
func (p *palette) table(vars []string, rows []pattern.Row, marks []string, withResult bool) string {
	numWidth := len(fmt.Sprint(len(rows))) + 1

	var b strings.Builder
	b.WriteString("  " + p.header.Sprintf("%*s", numWidth, "#"))
	for _, v := range vars {
		b.WriteString(" | " + p.header.Sprint(v))
	}
	if withResult {
		b.WriteString(" | " + p.header.Sprint("result"))
	}
	b.WriteString("\n  " + strings.Repeat("-", numWidth))
	for range vars {
		b.WriteString("-+--")
	}
	if withResult {
		b.WriteString("-+-------")
	}
	b.WriteString("\n")

	for i, r := range rows {
		num := fmt.Sprint(i + 1)
		if i < len(marks) {
			num += marks[i]
		}
		b.WriteString(fmt.Sprintf("  %*s", numWidth, num))
		for j := range vars {
			b.WriteString(" | " + p.symbol(r.Pattern.At(j)))
		}
		if withResult {
			b.WriteString(" | " + p.outcome(r.Result))
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
