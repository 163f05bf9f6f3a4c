package renderer

import "sync/atomic"

// ProgressCallback receives the number of rows still to render. It may be called
// concurrently from several workers.
type ProgressCallback func(rowsRemaining, totalRows int)

// Progress counts rows remaining across all workers
type Progress struct {
	totalRows int
	remaining atomic.Int64
	callback  ProgressCallback
}

// NewProgress creates a counter for totalRows rows
func NewProgress(totalRows int, callback ProgressCallback) *Progress {
	p := &Progress{totalRows: totalRows, callback: callback}
	p.remaining.Store(int64(totalRows))
	return p
}

// RowsDone marks rows as finished and returns the rows remaining
func (p *Progress) RowsDone(rows int) int {
	remaining := int(p.remaining.Add(-int64(rows)))
	if p.callback != nil {
		p.callback(remaining, p.totalRows)
	}
	return remaining
}

// Remaining returns the rows still to render
func (p *Progress) Remaining() int {
	return int(p.remaining.Load())
}

// TotalRows returns the number of rows being tracked
func (p *Progress) TotalRows() int {
	return p.totalRows
}
