// Package page slices a filtered sequence into one page. The reported total
// is always the pre-pagination length, so clients compute total pages as
// ceil(total/limit).
package page

// Slice returns the subsequence [start, start+limit) of records where
// start = (pageNum-1)*limit, clipped to the sequence bounds. A page beyond
// the data yields an empty slice, never an error.
func Slice[T any](records []T, pageNum, limit int) []T {
	start := (pageNum - 1) * limit
	if start < 0 || start >= len(records) {
		return []T{}
	}
	end := start + limit
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}
