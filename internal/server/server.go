// Package server hosts the analysis engine behind a small HTTP API. The
// engine itself stays pure; this package only adapts requests and renders
// results.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/phillyrei/multifamily-analyzer/internal/analysis"
	"github.com/phillyrei/multifamily-analyzer/internal/config"
	"github.com/phillyrei/multifamily-analyzer/internal/standards"
	"github.com/phillyrei/multifamily-analyzer/pkg/constants"
	"github.com/phillyrei/multifamily-analyzer/pkg/output"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the analysis API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Analysis endpoint (YAML config file upload)
	mux.HandleFunc("/api/analyze", h.handleAnalyze)

	// Analysis endpoint for editor-driven requests (JSON config payload)
	mux.HandleFunc("/api/editor/analyze", h.handleAnalyzeEditor)

	// Payment standard tables for UI display
	mux.HandleFunc("/api/standards", h.handleStandards)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type analyzeResponse struct {
	Result   *analysis.AnalysisResult `json:"result"`
	Report   string                   `json:"report"`
	Warnings []string                 `json:"warnings,omitempty"`
	Duration string                   `json:"duration"`
	Config   map[string]interface{}   `json:"config,omitempty"`
}

func (h *handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), "server.handleAnalyze")
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), "server.handleAnalyze")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "missing configuration file", "server.handleAnalyze")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", "server.handleAnalyze"),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err), "server.handleAnalyze")
		return
	}

	h.runAnalysis(w, buf.Bytes(), start, "server.handleAnalyze")
}

func (h *handler) handleAnalyzeEditor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode configuration: %v", err), "server.handleAnalyzeEditor")
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	configBytes, err := yaml.Marshal(payload)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err), "server.handleAnalyzeEditor")
		return
	}

	h.runAnalysis(w, configBytes, start, "server.handleAnalyzeEditor")
}

func (h *handler) handleStandards(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	year := r.URL.Query().Get("year")
	if year == "" {
		year = standards.DefaultScheduleYear
	}

	schedule, err := standards.ScheduleForYear(year)
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error(), "server.handleStandards")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"year":          schedule.Year,
		"effectiveDate": schedule.EffectiveDate,
		"zipGroups":     schedule.ZipGroups,
		"standards":     schedule.Standards,
		"rentTypes":     schedule.RentTypes,
		"years":         standards.ScheduleYears(),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) runAnalysis(w http.ResponseWriter, configBytes []byte, start time.Time, op string) {
	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(configBytes))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	warnings := cfg.ValidateConfiguration()

	schedule, err := standards.ScheduleForYear(cfg.Property.ScheduleYear)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	resolver, err := standards.NewResolver(schedule, h.logger)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to initialize resolver: %v", err), op)
		return
	}

	analyzer := analysis.NewAnalyzer(resolver, h.logger)
	result, err := analyzer.Analyze(cfg.Property.ZipCode, cfg.Property.UnitMix, cfg.FinancialInputs())
	if err != nil {
		h.respondError(w, statusForAnalysisError(err), err.Error(), op)
		return
	}

	elapsed := time.Since(start)

	configMap, err := decodeYAMLToMap(configBytes)
	if err != nil {
		configMap = make(map[string]interface{})
	}

	response := analyzeResponse{
		Result:   result,
		Report:   output.PrettyString(result),
		Warnings: warnings,
		Duration: elapsed.String(),
		Config:   configMap,
	}

	h.logger.Info("analysis computed",
		zap.String("op", op),
		zap.String("zipCode", result.ZipCode),
		zap.Int("units", len(result.Units)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

// statusForAnalysisError maps the engine's two error kinds onto HTTP codes:
// malformed input is a 400, a failed table lookup is a 404.
func statusForAnalysisError(err error) int {
	var lookupErr *standards.LookupError
	if errors.As(err, &lookupErr) {
		return http.StatusNotFound
	}
	var validationErr *analysis.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func decodeYAMLToMap(data []byte) (map[string]interface{}, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return make(map[string]interface{}), nil
	}

	var result map[string]interface{}
	if err := yaml.Unmarshal(trimmed, &result); err != nil {
		return nil, err
	}
	if result == nil {
		result = make(map[string]interface{})
	}
	return result, nil
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("analysis request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
