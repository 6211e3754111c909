// Package renderer turns analysis results into markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"text/template"

	"github.com/etnz/riskstat"
)

//go:embed *.md
var templates embed.FS

// DefaultPrecision is the number of significant digits used for statistics.
const DefaultPrecision = 6

// ReportRenderOptions holds configuration for rendering a report.
type ReportRenderOptions struct {
	Precision      int  // significant digits, DefaultPrecision if 0
	SkipCovariance bool // Do not render the covariance matrix section.
}

// reportView is the data the report templates are executed on.
type reportView struct {
	*riskstat.Report
	Names  []string
	Matrix [][]float64
}

func newReportView(r *riskstat.Report) reportView {
	v := reportView{Report: r}
	if r.Covariance != nil {
		v.Names = make([]string, r.Covariance.Len())
		for i := range v.Names {
			v.Names[i] = r.Covariance.Name(i)
		}
		v.Matrix = r.Covariance.Rows()
	}
	return v
}

// RenderReport renders the full report to a markdown string.
func RenderReport(r *riskstat.Report, opts ReportRenderOptions) string {
	partials := map[string]string{
		"report_title":      "report_title.md",
		"report_assets":     "report_assets.md",
		"report_covariance": "report_covariance.md",
		"report_portfolio":  "report_portfolio.md",
	}
	// An empty file name results in an empty template.
	if opts.SkipCovariance {
		partials["report_covariance"] = ""
	}
	return renderTemplate("report", "report.md", partials, opts.Precision, newReportView(r))
}

// RenderCovariance renders only the covariance matrix of the report.
func RenderCovariance(r *riskstat.Report, opts ReportRenderOptions) string {
	partials := map[string]string{
		"report_covariance": "report_covariance.md",
	}
	return renderTemplate("covariance", "covariance.md", partials, opts.Precision, newReportView(r))
}

// formatter returns a function formatting floats with 'precision' significant digits.
func formatter(precision int) func(float64) string {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	return func(x float64) string { return strconv.FormatFloat(x, 'g', precision, 64) }
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, precision int, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	funcs := template.FuncMap{"num": formatter(precision)}
	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
