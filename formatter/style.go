package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/gnoswap-labs/scover/internal/pattern"
	"github.com/gnoswap-labs/scover/internal/reach"
)

type palette struct {
	title   *color.Color
	header  *color.Color
	warning *color.Color
	note    *color.Color
	errorS  *color.Color
	fileS   *color.Color
	trueS   *color.Color
	falseS  *color.Color
	skipS   *color.Color
}

// newPalette builds fresh styles so that enabling or disabling color does
// not touch the package-level state of fatih/color.
func newPalette(enabled bool) *palette {
	p := &palette{
		title:   color.New(color.FgYellow, color.Bold),
		header:  color.New(color.FgCyan, color.Bold),
		warning: color.New(color.FgHiYellow, color.Bold),
		note:    color.New(color.FgHiBlue),
		errorS:  color.New(color.FgRed, color.Bold),
		fileS:   color.New(color.FgCyan, color.Bold),
		trueS:   color.New(color.FgGreen, color.Bold),
		falseS:  color.New(color.FgRed, color.Bold),
		skipS:   color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.title, p.header, p.warning, p.note, p.errorS, p.fileS, p.trueS, p.falseS, p.skipS} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *palette) symbol(s pattern.Symbol) string {
	switch s {
	case pattern.SymbolTrue:
		return p.trueS.Sprint(s.String())
	case pattern.SymbolFalse:
		return p.falseS.Sprint(s.String())
	default:
		return p.skipS.Sprint(s.String())
	}
}

func (p *palette) outcome(o pattern.Outcome) string {
	switch o {
	case pattern.OutcomeTrue:
		return p.trueS.Sprint(string(o))
	case pattern.OutcomeFalse:
		return p.falseS.Sprint(string(o))
	case pattern.OutcomeError:
		return p.errorS.Sprint(string(o))
	default:
		return ""
	}
}

func (p *palette) legend() string {
	var b strings.Builder
	b.WriteString(p.title.Sprint("Legend:"))
	b.WriteString("\n  " + p.symbol(pattern.SymbolTrue) + ": Variable was evaluated and is True")
	b.WriteString("\n  " + p.symbol(pattern.SymbolFalse) + ": Variable was evaluated and is False")
	b.WriteString("\n  " + p.symbol(pattern.SymbolSkipped) + ": Variable was not evaluated (short-circuited)")
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func (p *palette) reachability(r reach.Reachability) string {
	class := string(r.Class)
	if r.Class != reach.Contingent {
		class = p.warning.Sprint(class)
	}
	return fmt.Sprintf("%s %s (can be True: %s, can be False: %s)",
		p.title.Sprint("Reachability:"), class, yesNo(r.CanBeTrue), yesNo(r.CanBeFalse))
}
