// Package report collects rule violations found while inspecting a package.
package report

import (
	"cmp"
	"go/token"
	"slices"
	"sync"

	"golang.org/x/tools/go/analysis"

	"github.com/sirkon/mustuse/internal/rules"
)

// Reporter collects violations of a single analysis pass.
type Reporter struct {
	mu      sync.Mutex
	reports []Report
}

// Report represents a single diagnostic entry.
type Report struct {
	Rule      rules.Rule
	MessageID rules.MessageID
	Pos       token.Pos
	End       token.Pos
}

// Message renders the report text.
func (r Report) Message() string {
	return r.Rule.Message(r.MessageID)
}

// Report adds a new record to the reporter.
func (r *Reporter) Report(rep Report) {
	r.mu.Lock()
	r.reports = append(r.reports, rep)
	r.mu.Unlock()
}

// Reports returns a snapshot of all collected records.
func (r *Reporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}

// Diagnostics converts the collected records into analysis diagnostics
// ordered by position.
func (r *Reporter) Diagnostics() []analysis.Diagnostic {
	reps := r.Reports()
	slices.SortStableFunc(reps, func(a, b Report) int {
		return cmp.Compare(a.Pos, b.Pos)
	})

	out := make([]analysis.Diagnostic, 0, len(reps))
	for _, rep := range reps {
		out = append(out, analysis.Diagnostic{
			Pos:      rep.Pos,
			End:      rep.End,
			Category: rep.Rule.ID(),
			Message:  rep.Message(),
		})
	}

	return out
}
