package display_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dirkeep/pkg/automove"
	"github.com/arthur-debert/dirkeep/pkg/checker"
	"github.com/arthur-debert/dirkeep/pkg/display"
	"github.com/arthur-debert/dirkeep/pkg/errors"
	"github.com/arthur-debert/dirkeep/pkg/rules"
	"github.com/arthur-debert/dirkeep/pkg/types"
)

func render(t *testing.T, fn func(r *display.Renderer)) string {
	t.Helper()
	var buf bytes.Buffer
	fn(display.NewRenderer(&buf, false, false))
	return buf.String()
}

func TestRenderCheckReport(t *testing.T) {
	t.Run("clean_rule", func(t *testing.T) {
		report := &checker.Report{Rules: []checker.RuleReport{
			{Rule: rules.DirRule{Path: "/home/u/Downloads"}},
		}}
		out := render(t, func(r *display.Renderer) { r.RenderCheckReport(report) })
		assert.Contains(t, out, "/home/u/Downloads OK")
	})

	t.Run("misplaced_entries_grouped_by_kind", func(t *testing.T) {
		report := &checker.Report{Rules: []checker.RuleReport{{
			Rule: rules.DirRule{Path: "/home/u/Downloads"},
			Misplaced: []checker.Entry{
				{Path: "/home/u/Downloads/z.txt", Kind: types.KindFile},
				{Path: "/home/u/Downloads/a.txt", Kind: types.KindFile},
				{Path: "/home/u/Downloads/junk", Kind: types.KindDirectory},
			},
		}}}
		out := render(t, func(r *display.Renderer) { r.RenderCheckReport(report) })

		assert.Contains(t, out, "3 misplaced")
		assert.Contains(t, out, "Directories (1): junk")
		// relative to the rule path, sorted
		assert.Contains(t, out, "Files (2): a.txt, z.txt")
	})

	t.Run("rule_error", func(t *testing.T) {
		report := &checker.Report{Rules: []checker.RuleReport{{
			Rule: rules.DirRule{Path: "/missing"},
			Errs: []error{errors.New(errors.ErrPathAccess, "cannot access /missing")},
		}}}
		out := render(t, func(r *display.Renderer) { r.RenderCheckReport(report) })
		assert.Contains(t, out, "cannot access /missing")
	})
}

func TestRenderMoveResults(t *testing.T) {
	results := []automove.RuleResult{
		{
			Rule: rules.MoveRule{Name: "music", Parent: "/dl", To: "/music"},
			Actions: []automove.Action{
				{Source: "/dl/a.mp3", Destination: "/music/a.mp3", Outcome: automove.Moved},
				{Source: "/dl/b.mp3", Destination: "/music/b.mp3", Outcome: automove.SkippedConflict,
					Err: errors.New(errors.ErrOverwriteBlocked, "would overwrite")},
			},
		},
		{Rule: rules.MoveRule{Name: "empty", Parent: "/dl", To: "/x"}},
	}

	t.Run("full_output", func(t *testing.T) {
		out := render(t, func(r *display.Renderer) { r.RenderMoveResults(results, false) })
		assert.Contains(t, out, "music 1 moved, 1 skipped")
		assert.Contains(t, out, "/dl/a.mp3 => /music/a.mp3")
		assert.Contains(t, out, "(skipped: exists)")
		assert.Contains(t, out, "empty OK")
	})

	t.Run("hide_ok", func(t *testing.T) {
		out := render(t, func(r *display.Renderer) { r.RenderMoveResults(results, true) })
		assert.NotContains(t, out, "empty OK")
		assert.Contains(t, out, "1 rules were hidden from the output (nothing to move)")
	})

	t.Run("planned_reported_as_to_move", func(t *testing.T) {
		planned := []automove.RuleResult{{
			Rule: rules.MoveRule{Name: "dry", Parent: "/dl", To: "/x"},
			Actions: []automove.Action{
				{Source: "/dl/a", Destination: "/x/a", Outcome: automove.Planned},
			},
		}}
		out := render(t, func(r *display.Renderer) { r.RenderMoveResults(planned, false) })
		assert.Contains(t, out, "1 to move")
	})
}

func TestRenderAutoMoveHint(t *testing.T) {
	t.Run("no_mode_silent", func(t *testing.T) {
		out := render(t, func(r *display.Renderer) { r.RenderAutoMoveHint("no", 3) })
		assert.Empty(t, out)
	})

	t.Run("any", func(t *testing.T) {
		out := render(t, func(r *display.Renderer) { r.RenderAutoMoveHint("any", 3) })
		assert.Contains(t, out, "Some files can be automatically moved!")
	})

	t.Run("count", func(t *testing.T) {
		out := render(t, func(r *display.Renderer) { r.RenderAutoMoveHint("count", 3) })
		assert.Contains(t, out, "3 files can be automatically moved!")
	})

	t.Run("zero_matches_silent", func(t *testing.T) {
		out := render(t, func(r *display.Renderer) { r.RenderAutoMoveHint("count", 0) })
		assert.Empty(t, out)
	})
}

func TestWriteCheckList(t *testing.T) {
	report := &checker.Report{Rules: []checker.RuleReport{
		{Misplaced: []checker.Entry{
			{Path: "/a/one.txt", Kind: types.KindFile},
			{Path: "/a/two", Kind: types.KindDirectory},
		}},
		{Misplaced: []checker.Entry{
			{Path: "/b/three.txt", Kind: types.KindFile},
		}},
	}}

	var buf bytes.Buffer
	display.WriteCheckList(&buf, report)
	assert.Equal(t, "/a/one.txt\n/a/two\n/b/three.txt\n", buf.String())
}

func TestWriteMoveList(t *testing.T) {
	results := []automove.RuleResult{{
		Actions: []automove.Action{
			{Source: "/dl/my song.mp3", Destination: "/music/my song.mp3"},
			{Source: "/dl/bad.mp3", Outcome: automove.Failed,
				Err: errors.New(errors.ErrScriptFailed, "script failed")},
			{Source: "/dl/ok.mp3", Destination: "/music/ok.mp3", Outcome: automove.Moved},
		},
	}}

	var buf bytes.Buffer
	display.WriteMoveList(&buf, results)

	lines := buf.String()
	require.Contains(t, lines, "/dl/my\\ song.mp3 /music/my\\ song.mp3\n")
	assert.Contains(t, lines, "/dl/ok.mp3 /music/ok.mp3\n")
	assert.NotContains(t, lines, "bad.mp3")
}
