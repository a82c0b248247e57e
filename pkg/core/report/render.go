package report

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(goldmark.WithExtensions(extension.Table))

// Markdown renders r as GitHub-flavoured Markdown with one table per
// sub-section.
func Markdown(r Report) string {
	var b strings.Builder

	b.WriteString("# ROI Projection\n\n")
	b.WriteString("## Input Parameters\n\n")
	b.WriteString("| Control | Value | Note |\n|---|---|---|\n")
	for _, c := range r.Controls {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", c.Label, c.Value, c.Tooltip)
	}

	b.WriteString("\n### Projected Land Cost\n\n")
	writeCards(&b, []Card{r.Land})

	b.WriteString("\n## Projected Returns\n")
	for _, s := range r.Sections {
		fmt.Fprintf(&b, "\n## %s\n", s.Title)
		for _, sub := range s.SubSections {
			fmt.Fprintf(&b, "\n### %s\n\n", sub.Title)
			writeCards(&b, sub.Cards)
		}
	}

	fmt.Fprintf(&b, "\n**%s: %s**\n", r.FullYear.Title, r.FullYear.Value)
	fmt.Fprintf(&b, "\n> **DISCLAIMER** %s\n", Disclaimer)
	return b.String()
}

func writeCards(b *strings.Builder, cards []Card) {
	b.WriteString("| Share | Amount | Note |\n|---|---:|---|\n")
	for _, c := range cards {
		fmt.Fprintf(b, "| %s | %s | %s |\n", c.Title, c.Value, c.Tooltip)
	}
}

// HTML converts the Markdown rendering with goldmark.
func HTML(r Report) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(r)), &buf); err != nil {
		return "", fmt.Errorf("failed to render report html: %w", err)
	}
	return buf.String(), nil
}

// Text renders r as aligned plain text for a terminal.
func Text(r Report) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "INPUT PARAMETERS")
	for _, c := range r.Controls {
		fmt.Fprintf(w, "  %s\t%s\n", c.Label, c.Value)
	}
	fmt.Fprintf(w, "  %s\t%s\n", r.Land.Title, r.Land.Value)

	fmt.Fprintln(w, "\nPROJECTED RETURNS")
	for _, s := range r.Sections {
		fmt.Fprintf(w, "%s\n", s.Title)
		for _, sub := range s.SubSections {
			fmt.Fprintf(w, "  %s\n", sub.Title)
			for _, c := range sub.Cards {
				fmt.Fprintf(w, "    %s\t%s\n", c.Title, c.Value)
			}
		}
	}
	fmt.Fprintf(w, "\n%s:\t%s\n", r.FullYear.Title, r.FullYear.Value)
	w.Flush()
	return buf.String()
}
