package dataset

// view.go composes the filter, sort, and paginate stages into the single
// pure pipeline that every interactive directive change re-runs.

// ViewState bundles every interactive directive that shapes the data view.
// It is immutable from the pipeline's perspective: handlers construct a
// fresh value per request, and each stage only reads it.
type ViewState struct {
	Criteria Criteria
	Sort     SortSpec
	Page     int
}

// NewViewState returns the default state: no filters, no sort, page 1.
func NewViewState() ViewState {
	return ViewState{Sort: Unsorted(), Page: 1}
}

// View is the fully derived, render-ready page of the dataset.
type View struct {
	Header      []string `json:"header"`
	Rows        []Row    `json:"rows"`
	TotalRows   int      `json:"totalRows"`
	Page        int      `json:"page"`
	TotalPages  int      `json:"totalPages"`
	PageNumbers []int    `json:"pageNumbers"`
}

// BuildView recomputes the derived view from the table snapshot: filter,
// then sort, then paginate. It always starts from the full Table so
// derived views stay consistent; nothing is cached or mutated in place.
//
// The sort column indexes into the post-projection row shape, since that
// is the table the user sees and clicks on. The page is NOT clamped when
// filters shrink the row set below it; the caller owns resetting the page
// and an out-of-range page renders empty.
func BuildView(t *Table, state ViewState) View {
	if state.Page < 1 {
		state.Page = 1
	}

	v := View{
		Header: []string{},
		Rows:   []Row{},
		Page:   state.Page,
	}
	if t == nil {
		return v
	}

	filtered := Filter(t.Rows, t.Header, state.Criteria)
	sorted := Sort(filtered, state.Sort)
	page := Paginate(sorted, state.Page, RowsPerPage)

	v.Header = ProjectHeader(t.Header, state.Criteria.SelectedColumns)
	v.Rows = page.Rows
	v.TotalRows = len(filtered)
	v.TotalPages = page.TotalPages
	v.PageNumbers = page.PageNumbers
	return v
}

// BuildRows runs only the filter and sort stages, returning the complete
// ordered row set. Used by the CSV export, which ignores pagination.
func BuildRows(t *Table, state ViewState) ([]string, []Row) {
	if t == nil {
		return []string{}, []Row{}
	}
	filtered := Filter(t.Rows, t.Header, state.Criteria)
	sorted := Sort(filtered, state.Sort)
	return ProjectHeader(t.Header, state.Criteria.SelectedColumns), sorted
}
