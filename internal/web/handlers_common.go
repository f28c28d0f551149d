package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/protractor09/ai-dashboard/internal/dataset"
)

// parseViewState builds the view pipeline directives from query parameters.
//
// Recognized parameters:
//   - search:  substring filter over all cells
//   - from/to: date range bounds, parsed with the same lenient layouts the
//     filter uses; an unparsable bound is dropped rather than rejected
//   - columns: comma-separated column selection, projected in given order
//   - sort:    column index into the visible (post-projection) table
//   - dir:     asc or desc
//   - page:    1-based page number, not clamped to the filtered row count
func parseViewState(r *http.Request) dataset.ViewState {
	q := r.URL.Query()
	state := dataset.NewViewState()

	state.Criteria.Text = q.Get("search")

	if from := q.Get("from"); from != "" {
		if t, ok := dataset.ParseDate(from); ok {
			state.Criteria.Dates.Start = t
		}
	}
	if to := q.Get("to"); to != "" {
		if t, ok := dataset.ParseDate(to); ok {
			state.Criteria.Dates.End = t
		}
	}

	if columns := q.Get("columns"); columns != "" {
		for _, name := range strings.Split(columns, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				state.Criteria.SelectedColumns = append(state.Criteria.SelectedColumns, name)
			}
		}
	}

	state.Sort.Column = intParam(q.Get("sort"), dataset.NoSortColumn)
	if q.Get("dir") == string(dataset.Desc) {
		state.Sort.Direction = dataset.Desc
	}

	state.Page = intParam(q.Get("page"), 1)

	return state
}

// intParam parses s as an int, falling back to def when empty or invalid.
func intParam(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
