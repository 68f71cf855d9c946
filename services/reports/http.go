package reports

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"creditpull-backend/lib/document"
	"creditpull-backend/lib/scrapers/creditreport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// IngestRequest carries one captured report page for extraction.
type IngestRequest struct {
	User      string               `json:"user"`
	SourceUrl string               `json:"source_url"`
	Html      string               `json:"html"`
	Options   creditreport.Options `json:"options"`
}

type IngestResponse struct {
	Id              string   `json:"id"`
	MissingSections []string `json:"missing_sections,omitempty"`
	SizeBytes       int      `json:"size_bytes"`
}

func NewRouter(service Service, cfg creditreport.Config) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Route("/v1/reports", func(r chi.Router) {
		r.Post("/", handleIngest(service, cfg))
		r.Get("/", handleList(service))
		r.Get("/{id}", handleGet(service))
	})

	return router
}

func handleIngest(service Service, cfg creditreport.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req IngestRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.User == "" || req.Html == "" {
			writeError(w, http.StatusBadRequest, "user and html are required")
			return
		}

		doc, err := document.FromHTML(req.Html)
		if err != nil {
			writeError(w, http.StatusBadRequest, "could not parse html")
			return
		}

		raw, err := creditreport.ExtractAll(ctx, doc, cfg, req.Options)
		if err != nil {
			slog.ErrorContext(ctx, "extraction failed", "user", req.User, "err", err)
			writeError(w, http.StatusInternalServerError, "extraction failed")
			return
		}
		report := creditreport.BuildReport(raw, cfg)

		missing := creditreport.ValidateReport(report)
		if len(missing) > 0 {
			slog.WarnContext(
				ctx,
				"report is missing foundational sections",
				"user", req.User,
				"missing", missing,
			)
		}

		id, err := service.SaveReport(ctx, req.User, req.SourceUrl, report)
		if err != nil {
			slog.ErrorContext(ctx, "failed to save report", "user", req.User, "err", err)
			writeError(w, http.StatusInternalServerError, "failed to save report")
			return
		}

		writeJSON(w, http.StatusCreated, IngestResponse{
			Id:              id,
			MissingSections: missing,
			SizeBytes:       creditreport.EstimateSize(report),
		})
	}
}

func handleList(service Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := r.URL.Query().Get("user")
		if user == "" {
			writeError(w, http.StatusBadRequest, "user query parameter is required")
			return
		}

		summaries, err := service.ListReports(r.Context(), user)
		if err != nil {
			slog.ErrorContext(r.Context(), "failed to list reports", "user", user, "err", err)
			writeError(w, http.StatusInternalServerError, "failed to list reports")
			return
		}
		writeJSON(w, http.StatusOK, summaries)
	}
}

func handleGet(service Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		saved, err := service.GetReport(r.Context(), id)
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "report not found")
			return
		}
		if err != nil {
			slog.ErrorContext(r.Context(), "failed to get report", "id", id, "err", err)
			writeError(w, http.StatusInternalServerError, "failed to get report")
			return
		}

		if page, ok := accountPage(r); ok {
			saved.Report = creditreport.WindowAccounts(saved.Report, page)
		}
		writeJSON(w, http.StatusOK, saved)
	}
}

// accountPage reads the optional account-history window off the query
// string.
func accountPage(r *http.Request) (creditreport.Page, bool) {
	limitStr := r.URL.Query().Get("limit")
	offsetStr := r.URL.Query().Get("offset")
	if limitStr == "" && offsetStr == "" {
		return creditreport.Page{}, false
	}

	var page creditreport.Page
	if n, err := strconv.Atoi(limitStr); err == nil {
		page.Limit = n
	}
	if n, err := strconv.Atoi(offsetStr); err == nil {
		page.Offset = n
	}
	return page, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
