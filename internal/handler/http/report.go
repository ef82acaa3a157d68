package http

import (
	"net/http"

	"github.com/hadirin/hadirin-backend-go/internal/domain/report"
	"github.com/hadirin/hadirin-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	RangeReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// RangeReport implements ReportHandler.
func (h *reportHandlerImpl) RangeReport(w http.ResponseWriter, r *http.Request) {
	req := report.RangeReportRequest{
		StartDate: r.URL.Query().Get("start"),
		EndDate:   r.URL.Query().Get("end"),
	}

	result, err := h.reportService.RangeReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
