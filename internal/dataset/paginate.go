package dataset

// paginate.go implements the paging stage of the view pipeline.

// RowsPerPage is the fixed page size for the data view.
const RowsPerPage = 10

// pageWindowSize is the maximum number of page links shown at once.
const pageWindowSize = 5

// PageView is one page window over an ordered row set.
type PageView struct {
	Rows        []Row `json:"rows"`
	TotalPages  int   `json:"totalPages"`
	PageNumbers []int `json:"pageNumbers"`
}

// Paginate slices rows into the window for page (1-based). An out-of-range
// page yields an empty slice; there is deliberately no clamping back to
// the last valid page, since callers own keeping the page in range after
// filters shrink the row set.
func Paginate(rows []Row, page, size int) PageView {
	if size <= 0 {
		size = RowsPerPage
	}

	totalPages := (len(rows) + size - 1) / size

	pv := PageView{
		Rows:        []Row{},
		TotalPages:  totalPages,
		PageNumbers: visiblePages(page, totalPages),
	}

	start := (page - 1) * size
	if page < 1 || start >= len(rows) {
		return pv
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	pv.Rows = rows[start:end]
	return pv
}

// visiblePages returns a window of at most five consecutive page numbers,
// centered on page when possible and clamped to [1, totalPages]. When the
// window hits the ceiling it slides back down to keep full width while
// enough pages exist.
func visiblePages(page, totalPages int) []int {
	if totalPages <= 0 {
		return nil
	}

	start := page - 2
	if start < 1 {
		start = 1
	}
	end := start + pageWindowSize - 1
	if end > totalPages {
		end = totalPages
		start = end - pageWindowSize + 1
		if start < 1 {
			start = 1
		}
	}

	nums := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		nums = append(nums, p)
	}
	return nums
}
