package handlers

import (
	"net/http"

	"fleetflow/internal/logx"
)

// ReportsHandler serves the per-vehicle finance report.
type ReportsHandler struct {
	reports reportsUsecase
	logger  logx.Logger
}

// NewReportsHandler wires a reportsUsecase into HTTP handlers.
func NewReportsHandler(logger logx.Logger, uc reportsUsecase) *ReportsHandler {
	return &ReportsHandler{reports: uc, logger: logger}
}

// Finance handles GET /api/reports/finance. With ?format=csv the report is
// streamed as a CSV attachment instead of JSON.
func (h *ReportsHandler) Finance(w http.ResponseWriter, r *http.Request) {
	rep, err := h.reports.Finance(r.Context())
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "Failed to build report.")
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="finance-report.csv"`)
		if err := rep.WriteCSV(w); err != nil {
			h.logger.Error("csv write error",
				logx.String("req_id", reqID(r.Context())),
				logx.Any("err", err),
			)
		}
		return
	}

	writeJSON(h.logger, w, r, http.StatusOK, reportToResponse(rep))
}
