package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/onep_client/internal/domain"
)

type DeviceStatusProvider interface {
	DeviceStatus() domain.DeviceStatus
}

type UsageService interface {
	Report(ctx context.Context, since time.Time) (domain.UsageReport, error)
	Throttled(ctx context.Context) ([]string, error)
}

type UploadsRepository interface {
	FilesPage(ctx context.Context, limit, offset uint64) ([]*domain.SpoolFile, int, error)
}

type OutcomesRepository interface {
	Outcomes(ctx context.Context, fileName string) ([]*domain.OutcomeRecord, error)
}

type DeviceHandler struct {
	status DeviceStatusProvider
}

func NewDeviceHandler(status DeviceStatusProvider) *DeviceHandler {
	return &DeviceHandler{
		status: status,
	}
}

func (h *DeviceHandler) GetDevice(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.status.DeviceStatus())
}

type UsageHandler struct {
	usage UsageService
	now   func() time.Time
}

func NewUsageHandler(usage UsageService) *UsageHandler {
	return &UsageHandler{
		usage: usage,
		now:   time.Now,
	}
}

type GetThrottledResponse struct {
	CIKs []string `json:"ciks"`
}

func (h *UsageHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	since, err := h.parseSince(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.usage.Report(r.Context(), since)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if report == nil {
		report = domain.UsageReport{}
	}

	writeJSON(w, report)
}

func (h *UsageHandler) GetThrottled(w http.ResponseWriter, r *http.Request) {
	ciks, err := h.usage.Throttled(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if ciks == nil {
		ciks = []string{}
	}

	writeJSON(w, GetThrottledResponse{CIKs: ciks})
}

// parseSince accepts either an RFC 3339 timestamp or a duration looking back from now.
// No value means the whole log.
func (h *UsageHandler) parseSince(r *http.Request) (time.Time, error) {
	s := r.URL.Query().Get("since")
	if s == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return time.Time{}, errors.New("invalid since, expected RFC 3339 time or positive duration")
	}

	return h.now().Add(-d), nil
}

type UploadsHandler struct {
	uploadsRepository  UploadsRepository
	outcomesRepository OutcomesRepository
}

func NewUploadsHandler(uploadsRepository UploadsRepository, outcomesRepository OutcomesRepository) *UploadsHandler {
	return &UploadsHandler{
		uploadsRepository:  uploadsRepository,
		outcomesRepository: outcomesRepository,
	}
}

type Pagination struct {
	Page       uint64 `json:"page"`
	Limit      uint64 `json:"limit"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
}

func newPagination(page, limit uint64, total int) Pagination {
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + int(limit) - 1) / int(limit),
	}
}

type GetUploadsResponse struct {
	Files      []*domain.SpoolFile `json:"files"`
	Pagination Pagination          `json:"pagination"`
}

func (h *UploadsHandler) GetUploads(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	offset := (page - 1) * limit

	files, total, err := h.uploadsRepository.FilesPage(r.Context(), limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if files == nil {
		files = []*domain.SpoolFile{}
	}

	writeJSON(w, GetUploadsResponse{
		Files:      files,
		Pagination: newPagination(page, limit, total),
	})
}

type GetOutcomesResponse struct {
	File     string                  `json:"file"`
	Outcomes []*domain.OutcomeRecord `json:"outcomes"`
}

func (h *UploadsHandler) GetOutcomes(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	outcomes, err := h.outcomesRepository.Outcomes(r.Context(), name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if len(outcomes) == 0 {
		http.Error(w, "no outcomes for "+name, http.StatusNotFound)
		return
	}

	writeJSON(w, GetOutcomesResponse{File: name, Outcomes: outcomes})
}

func parsePagination(r *http.Request) (page uint64, limit uint64, err error) {
	page, limit = 1, 10

	if p := r.URL.Query().Get("page"); p != "" {
		page, err = strconv.ParseUint(p, 10, 64)
		if err != nil || page == 0 {
			return 0, 0, errors.New("invalid page")
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		limit, err = strconv.ParseUint(l, 10, 64)
		if err != nil || limit < 1 || limit > 100 {
			return 0, 0, errors.New("invalid limit, must be in [1;100]")
		}
	}

	return page, limit, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
