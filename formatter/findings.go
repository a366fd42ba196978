package formatter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gnoswap-labs/scover/analyzer"
	"github.com/gnoswap-labs/scover/internal/pattern"
)

// User-facing messages for analysis failures.
const (
	MsgEmptyExpression   = "Please enter an expression."
	MsgNoVariables       = "Please enter a valid boolean expression with single-letter variables."
	MsgInvalidExpression = "Invalid expression. Please check your syntax."
	MsgTooManyVariables  = "Too many variables for an exhaustive analysis."
)

// ErrorMessage maps an analysis error to the message shown to users.
func ErrorMessage(expression string, err error) string {
	switch {
	case strings.TrimSpace(expression) == "":
		return MsgEmptyExpression
	case errors.Is(err, analyzer.ErrNoVariables):
		return MsgNoVariables
	case errors.Is(err, analyzer.ErrInvalidExpression):
		return MsgInvalidExpression
	case errors.Is(err, analyzer.ErrTooManyVariables):
		return MsgTooManyVariables
	case err == nil:
		return ""
	default:
		return err.Error()
	}
}

// WriteError renders a failed analysis in the same header style as findings.
func (f *Formatter) WriteError(w io.Writer, expression string, err error) error {
	_, werr := fmt.Fprintf(w, "%s%s\n", f.styles.errorS.Sprint("error: "), ErrorMessage(expression, err))
	return werr
}

// WriteFindings renders batch findings one per line, followed by a
// summary. With verbose set, each successful finding is followed by its
// full result.
func (f *Formatter) WriteFindings(w io.Writer, findings []analyzer.Finding, verbose bool) error {
	var b strings.Builder
	failed := 0
	for _, fd := range findings {
		loc := f.styles.fileS.Sprintf("%s:%d", fd.File, fd.Line)
		if fd.Failed() {
			failed++
			fmt.Fprintf(&b, "%s %s: %s (%s)\n", f.styles.errorS.Sprint("error"), loc, ErrorMessage(fd.Expression, fd.Err), fd.Expression)
			continue
		}
		res := fd.Result
		fmt.Fprintf(&b, "%s %s: %s  [%s]  %d patterns, %d minimal\n",
			f.styles.trueS.Sprint("ok   "), loc, fd.Expression,
			strings.Join(patternStrings(res.Minimal), " "), len(res.Full), len(res.Minimal))
		if verbose {
			b.WriteString("\n")
			if err := f.WriteResult(&b, res); err != nil {
				return err
			}
			b.WriteString("\n")
		}
	}
	fmt.Fprintf(&b, "\nAnalyzed %d expressions, %d failed.\n", len(findings), failed)

	_, err := io.WriteString(w, b.String())
	return err
}

func patternStrings(rows []pattern.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = string(r.Pattern)
	}
	return out
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
