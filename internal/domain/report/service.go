package report

import "context"

// ReportService recomputes attendance statistics on demand. Nothing is
// cached: every call classifies from the current snapshot, so retroactive
// approvals are reflected immediately.
type ReportService interface {
	// RangeReport classifies every active employee for every date in the
	// range and aggregates status counts
	RangeReport(ctx context.Context, req RangeReportRequest) (RangeReportResponse, error)
}
