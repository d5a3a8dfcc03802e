// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/ats-analyzer/internal/ranking"
	"github.com/jonathan/ats-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// barWidth is the number of cells in a score bar
	barWidth = 20
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad truncates or right-pads line to the inner box width, counting runes.
func pad(line string) string {
	inner := boxWidth - 4
	n := utf8.RuneCountInString(line)
	if n > inner {
		runes := []rune(line)
		return string(runes[:inner-3]) + "..."
	}
	return line + strings.Repeat(" ", inner-n)
}

// scoreBar renders score (0-100) as a fixed-width bar.
func scoreBar(score float64) string {
	filled := int(score / 100 * barWidth)
	filled = max(0, min(barWidth, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// listSkills writes up to maxItemsToShow skills on one line, noting how many were cut.
func listSkills(sb *strings.Builder, label string, skills []string) {
	if len(skills) == 0 {
		sb.WriteString(fmt.Sprintf("%s (none)\n", label))
		return
	}
	shown := skills[:min(len(skills), maxItemsToShow)]
	sb.WriteString(fmt.Sprintf("%s %s", label, strings.Join(shown, ", ")))
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf(" (+%d more)", len(skills)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// PrintAnalysis outputs the score, its breakdown, skills and recommendations.
func (p *Printer) PrintAnalysis(jobTitle, company string, r *types.AnalysisResult) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:      %s\n", jobTitle))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", company))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("ATS Score: %6.2f  %s\n", r.ATSScore, scoreBar(r.ATSScore)))
	sb.WriteString(fmt.Sprintf("  Semantic: %.3f\n", r.ScoreBreakdown.Semantic))
	sb.WriteString(fmt.Sprintf("  Lexical:  %.3f\n", r.ScoreBreakdown.Lexical))
	sb.WriteString(fmt.Sprintf("  Keyword:  %.3f\n", r.ScoreBreakdown.Keyword))
	sb.WriteString("\n")
	listSkills(&sb, "Matching:", r.MatchingSkills)
	listSkills(&sb, "Missing: ", r.MissingSkills)

	if len(r.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, rec := range r.Recommendations {
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	p.printBox("ATS ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs every skill found in a document.
func (p *Printer) PrintSkills(source string, skills []string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source: %s\n", source))
	sb.WriteString(fmt.Sprintf("Found:  %d skills\n", len(skills)))
	if len(skills) > 0 {
		sb.WriteString("\n")
	}
	for _, s := range skills {
		sb.WriteString(fmt.Sprintf("  • %s\n", s))
	}
	p.printBox("EXTRACTED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs jobs in ranked order with their scores and notes.
func (p *Printer) PrintRanking(resumeName string, ranked []ranking.Ranked) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resume: %s\n", resumeName))
	sb.WriteString(fmt.Sprintf("Jobs scored: %d\n", len(ranked)))

	for i, r := range ranked {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, r.Job))
		sb.WriteString(fmt.Sprintf("    %6.2f  %s\n", r.Result.ATSScore, scoreBar(r.Result.ATSScore)))
		if r.Notes != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", r.Notes))
		}
	}

	p.printBox("JOB RANKING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHistory outputs persisted analyses, newest first.
func (p *Printer) PrintHistory(entries []types.HistoryEntry) {
	if len(entries) == 0 {
		p.printBox("ANALYSIS HISTORY", "No analyses yet")
		return
	}

	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s  %6.2f\n", e.AnalyzedAt.Local().Format("2006-01-02 15:04"), e.ATSScore))
		sb.WriteString(fmt.Sprintf("  %s @ %s\n", e.JobTitle, e.Company))
		sb.WriteString(fmt.Sprintf("  Resume: %s\n", e.ResumeFilename))
		sb.WriteString(fmt.Sprintf("  ID: %s\n", e.ID))
	}
	p.printBox("ANALYSIS HISTORY", strings.TrimSuffix(sb.String(), "\n"))
}
