// Package renderer turns ledger views into markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// Statement renders the transactions of a single account to a markdown string.
func Statement(s StatementData) string {
	partials := map[string]string{
		"statement_title": "statement_title.md",
		"statement_table": "statement_table.md",
	}
	return renderTemplate("statement", "statement.md", partials, s)
}

// Overview renders the list of accounts of a ledger to a markdown string.
func Overview(o OverviewData) string {
	partials := map[string]string{
		"overview_title": "overview_title.md",
		"overview_table": "overview_table.md",
	}
	return renderTemplate("overview", "overview.md", partials, o)
}

// funcs are the helpers available to every template.
var funcs = template.FuncMap{
	"money": Money,
	"rate":  Rate,
	"cell":  cell,
}

// cell escapes s so that it fits in a single markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
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
