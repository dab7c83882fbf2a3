package display

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/dirkeep/pkg/automove"
	"github.com/arthur-debert/dirkeep/pkg/checker"
	"github.com/arthur-debert/dirkeep/pkg/style"
)

// ColorEnabled decides whether styled output should be produced:
// the config toggle must be on, NO_COLOR must not be set, and stdout
// must be a terminal.
func ColorEnabled(configured bool) bool {
	if !configured {
		return false
	}
	if termenv.EnvNoColor() {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Renderer writes human-readable reports. The raw --list modes bypass
// it entirely (see WriteCheckList / WriteMoveList).
type Renderer struct {
	w       io.Writer
	color   bool
	unicode bool
}

// NewRenderer creates a renderer for the given writer.
func NewRenderer(w io.Writer, color, unicode bool) *Renderer {
	return &Renderer{w: w, color: color, unicode: unicode}
}

func (r *Renderer) sprint(st lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return st.Render(s)
}

func (r *Renderer) status(st style.Status, s string) string {
	if !r.color {
		return s
	}
	return style.StatusStyle(st).Sprint(s)
}

func (r *Renderer) marker(st style.Status) string {
	return r.status(st, style.Marker(st, r.unicode))
}

// RenderCheckReport writes the per-rule compliance report.
func (r *Renderer) RenderCheckReport(report *checker.Report) {
	for i := range report.Rules {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		r.renderRuleReport(&report.Rules[i])
	}
}

func (r *Renderer) renderRuleReport(rr *checker.RuleReport) {
	path := r.sprint(style.PathStyle, rr.Rule.Path)

	if len(rr.Errs) > 0 {
		fmt.Fprintf(r.w, "%s %s\n", path, r.marker(style.StatusError))
		for _, err := range rr.Errs {
			fmt.Fprintf(r.w, "%s\n", r.sprint(style.ErrorStyle, err.Error()))
		}
		return
	}

	if len(rr.Misplaced) == 0 {
		fmt.Fprintf(r.w, "%s %s\n", path, r.marker(style.StatusOk))
		return
	}

	count := fmt.Sprintf("%d misplaced", len(rr.Misplaced))
	fmt.Fprintf(r.w, "%s %s %s\n", path, r.marker(style.StatusIssues), r.sprint(style.CountStyle, count))

	dirs := rr.FilterKind(true)
	files := rr.FilterKind(false)
	if len(dirs) > 0 {
		fmt.Fprintf(r.w, "%s (%d): %s\n", r.sprint(style.TitleStyle, "Directories"),
			len(dirs), r.joinRelative(dirs, rr.Rule.Path))
	}
	if len(files) > 0 {
		fmt.Fprintf(r.w, "%s (%d): %s\n", r.sprint(style.TitleStyle, "Files"),
			len(files), r.joinRelative(files, rr.Rule.Path))
	}
}

// joinRelative renders entry paths relative to the rule directory,
// sorted for stable presentation (the scanner itself imposes no sort).
func (r *Renderer) joinRelative(entries []checker.Entry, base string) string {
	rels := make([]string, 0, len(entries))
	for _, e := range entries {
		rel, err := filepath.Rel(base, e.Path)
		if err != nil {
			rel = e.Path
		}
		rels = append(rels, rel)
	}
	sort.Strings(rels)
	return strings.Join(rels, ", ")
}

// RenderMoveResults writes the per-rule auto-move report. hideOk
// suppresses rules with nothing to move, reporting how many were
// hidden at the end.
func (r *Renderer) RenderMoveResults(results []automove.RuleResult, hideOk bool) {
	hidden := 0
	first := true
	for i := range results {
		res := &results[i]
		if res.Ok() && hideOk {
			hidden++
			continue
		}
		if !first {
			fmt.Fprintln(r.w)
		}
		first = false
		r.renderRuleResult(res)
	}

	if hidden > 0 {
		if !first {
			fmt.Fprintln(r.w)
		}
		msg := fmt.Sprintf("%d rules were hidden from the output (nothing to move)", hidden)
		fmt.Fprintln(r.w, r.sprint(style.MutedStyle, msg))
	}
}

func (r *Renderer) renderRuleResult(res *automove.RuleResult) {
	name := r.sprint(style.PathStyle, res.Rule.DisplayName())

	if res.Err != nil {
		fmt.Fprintf(r.w, "%s %s %s\n", name, r.marker(style.StatusError),
			r.sprint(style.ErrorStyle, res.Err.Error()))
		return
	}

	if len(res.Actions) == 0 {
		fmt.Fprintf(r.w, "%s %s\n", name, r.marker(style.StatusOk))
		return
	}

	var info []string
	if n := res.CountByOutcome(automove.Moved); n > 0 {
		info = append(info, r.status(style.StatusMoved, fmt.Sprintf("%d moved", n)))
	}
	if n := res.CountByOutcome(automove.Planned); n > 0 {
		info = append(info, r.status(style.StatusPlanned, fmt.Sprintf("%d to move", n)))
	}
	if n := res.CountByOutcome(automove.SkippedConflict); n > 0 {
		info = append(info, r.status(style.StatusSkipped, fmt.Sprintf("%d skipped", n)))
	}
	if n := res.CountByOutcome(automove.Failed); n > 0 {
		info = append(info, r.status(style.StatusError, fmt.Sprintf("%d errors", n)))
	}
	fmt.Fprintf(r.w, "%s %s\n", name, strings.Join(info, ", "))

	arrow := "=>"
	if r.unicode {
		arrow = "→"
	}
	for _, a := range res.Actions {
		line := fmt.Sprintf("%s %s %s", a.Source, arrow, a.Destination)
		switch a.Outcome {
		case automove.Failed:
			fmt.Fprintf(r.w, "  %s\n", r.sprint(style.ErrorStyle, a.Err.Error()))
		case automove.SkippedConflict:
			fmt.Fprintf(r.w, "  %s %s\n", line, r.status(style.StatusSkipped, "(skipped: exists)"))
		default:
			fmt.Fprintf(r.w, "  %s\n", line)
		}
	}
}

// RenderAutoMoveHint appends the check report's auto-move hint per
// the report-info setting ("no", "any" or "count"). count comes from
// Resolver.CountMatches, which never runs naming scripts.
func (r *Renderer) RenderAutoMoveHint(mode string, count int) {
	if count == 0 {
		return
	}
	switch mode {
	case "any":
		fmt.Fprintf(r.w, "\n%s %s\n",
			r.sprint(style.WarningStyle, "Some files can be automatically moved!"),
			r.sprint(style.MutedStyle, "(Run auto-move command)"))
	case "count":
		fmt.Fprintf(r.w, "\n%s %s\n",
			r.sprint(style.WarningStyle, fmt.Sprintf("%d files can be automatically moved!", count)),
			r.sprint(style.MutedStyle, "(Run auto-move command)"))
	}
}

// WriteCheckList emits the raw machine-readable listing: one absolute
// misplaced path per line, no styling.
func WriteCheckList(w io.Writer, report *checker.Report) {
	for i := range report.Rules {
		for _, e := range report.Rules[i].Misplaced {
			fmt.Fprintln(w, e.Path)
		}
	}
}

// WriteMoveList emits the raw "old-path new-path" listing, spaces
// backslash-escaped so the output splits cleanly.
func WriteMoveList(w io.Writer, results []automove.RuleResult) {
	for i := range results {
		for _, a := range results[i].Actions {
			if a.Outcome == automove.Failed {
				continue
			}
			fmt.Fprintf(w, "%s %s\n", escapeSpaces(a.Source), escapeSpaces(a.Destination))
		}
	}
}

func escapeSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "\\ ")
}
