package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/gnoswap-labs/scover/analyzer"
	"github.com/gnoswap-labs/scover/formatter"
	"github.com/gnoswap-labs/scover/internal/pattern"
)

const maxBodyBytes = 64 << 10

type tableRow struct {
	Number int
	Cells  []string
	Result string
	Padded bool
}

type tableView struct {
	Title      string
	Target     int // set for the minimal table, whose title the template spells out
	Variables  []string
	WithResult bool
	Rows       []tableRow
}

type pageData struct {
	Expression string
	Variant    string
	Variants   []analyzer.Variant
	Examples   []string
	Message    string
	Result     *analyzer.Result
	Full       *tableView
	Minimal    *tableView
	Summary    string
}

func newTable(title string, res *analyzer.Result, rows []pattern.Row, padded func(int) bool) *tableView {
	t := &tableView{
		Title:      title,
		Variables:  res.Variables,
		WithResult: res.Variant == analyzer.VariantExtended,
	}
	for i, r := range rows {
		t.Rows = append(t.Rows, tableRow{
			Number: i + 1,
			Cells:  r.Pattern.Symbols(),
			Result: string(r.Result),
			Padded: padded(i),
		})
	}
	return t
}

func (s *Server) page(expression string, variant analyzer.Variant) pageData {
	return pageData{
		Expression: expression,
		Variant:    string(variant),
		Variants:   []analyzer.Variant{analyzer.VariantBasic, analyzer.VariantExtended},
		Examples:   Examples,
	}
}

// analyzePage runs the analysis and fills the page; failures become the
// page message.
func (s *Server) analyzePage(expression string, variant analyzer.Variant) pageData {
	data := s.page(expression, variant)
	if strings.TrimSpace(expression) == "" {
		data.Message = formatter.MsgEmptyExpression
		return data
	}

	res, err := s.Analyzer.AnalyzeVariant(expression, variant)
	if err != nil {
		s.Logger.Debug("analysis failed", zap.String("expression", expression), zap.Error(err))
		data.Message = formatter.ErrorMessage(expression, err)
		return data
	}

	padded := make(map[int]bool, len(res.Padded))
	for _, i := range res.Padded {
		padded[i] = true
	}
	data.Result = res
	data.Full = newTable("Full Table", res, res.Full, func(i int) bool { return padded[i] })
	data.Minimal = newTable("", res, res.Minimal,
		func(k int) bool { return k < len(res.Indices) && padded[res.Indices[k]] })
	data.Minimal.Target = res.Target
	data.Summary = fmt.Sprintf("The full table shows %d unique evaluation patterns for your expression.", len(res.Full))
	return data
}

func (s *Server) variantOf(v string) (analyzer.Variant, error) {
	if v == "" {
		return s.Analyzer.Config().Variant, nil
	}
	variant := analyzer.Variant(v)
	return variant, variant.Validate()
}

// HandleIndex shows the form. An expression query parameter is analyzed
// right away so results can be linked to.
func (s *Server) HandleIndex(w http.ResponseWriter, r *http.Request) {
	variant, err := s.variantOf(r.URL.Query().Get("variant"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if expression, ok := r.URL.Query()["expression"]; ok && len(expression) > 0 {
		s.render(w, http.StatusOK, "index.html", s.analyzePage(expression[0], variant))
		return
	}
	s.render(w, http.StatusOK, "index.html", s.page(DefaultExpression, variant))
}

func (s *Server) HandleAnalyzeForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	variant, err := s.variantOf(r.PostFormValue("variant"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.render(w, http.StatusOK, "index.html", s.analyzePage(r.PostFormValue("expression"), variant))
}

type analyzeRequest struct {
	Expression string `json:"expression"`
	Variant    string `json:"variant,omitempty"`
}

type analyzeResponse struct {
	OK     bool             `json:"ok"`
	Result *analyzer.Result `json:"result"`
}

func (s *Server) HandleAnalyzeJSON(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	variant, err := s.variantOf(req.Variant)
	if err != nil {
		s.jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Expression) == "" {
		s.jsonError(w, http.StatusBadRequest, formatter.MsgEmptyExpression)
		return
	}

	res, err := s.Analyzer.AnalyzeVariant(req.Expression, variant)
	switch {
	case err == nil:
		s.json(w, http.StatusOK, analyzeResponse{OK: true, Result: res})
	case errors.Is(err, analyzer.ErrTooManyVariables):
		s.jsonError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, analyzer.ErrNoVariables), errors.Is(err, analyzer.ErrInvalidExpression):
		s.jsonError(w, http.StatusBadRequest, formatter.ErrorMessage(req.Expression, err))
	default:
		s.Logger.Error("analysis failed", zap.String("expression", req.Expression), zap.Error(err))
		s.jsonError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.json(w, http.StatusOK, map[string]any{"ok": true})
}
