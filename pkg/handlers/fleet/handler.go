package fleet

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/it-tools/asset-atlas/pkg/models/api"
	"github.com/it-tools/asset-atlas/pkg/models/domain"
	"github.com/it-tools/asset-atlas/pkg/services/fleet"
	"github.com/it-tools/asset-atlas/pkg/services/inventory"
	"github.com/it-tools/asset-atlas/pkg/store/reportcfg"
	"github.com/rs/zerolog"
)

const defaultMethod = domain.MethodStraightLine

type Handler struct {
	explorer inventory.Explorer
	reporter *fleet.Reporter
	configs  reportcfg.Store
}

func NewHandler(explorer inventory.Explorer, reporter *fleet.Reporter, configs reportcfg.Store) *Handler {
	return &Handler{
		explorer: explorer,
		reporter: reporter,
		configs:  configs,
	}
}

func (h *Handler) ListFleets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fleets, err := h.explorer.ListFleets(ctx)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err, "failed to list fleets")
		return
	}

	response := make([]api.Fleet, 0, len(fleets))
	for _, f := range fleets {
		response = append(response, api.Fleet{Name: f.Name})
	}
	writeJSON(w, r, response)
}

func (h *Handler) GetAssetValuation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	fleetName := chi.URLParam(r, "fleet")
	assetID := chi.URLParam(r, "asset")

	method, ok := parseMethod(r.URL.Query().Get("method"))
	if !ok {
		http.Error(w, "unknown depreciation method", http.StatusBadRequest)
		return
	}

	result, schedule, err := h.reporter.AssetValuation(ctx, domain.Fleet{Name: fleetName}, assetID, method)
	if err != nil {
		writeError(w, r, http.StatusNotFound, err, "failed to value asset")
		return
	}

	writeJSON(w, r, api.Valuation{
		InsufficientData: result == nil,
		Result:           result,
		Schedule:         schedule,
	})
}

func (h *Handler) GetDepreciationReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	fleetName := chi.URLParam(r, "fleet")

	method, ok := parseMethod(r.URL.Query().Get("method"))
	if !ok {
		http.Error(w, "unknown depreciation method", http.StatusBadRequest)
		return
	}

	report, err := h.reporter.DepreciationReport(ctx, domain.Fleet{Name: fleetName}, method)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err, "failed to build depreciation report")
		return
	}
	writeJSON(w, r, report)
}

func (h *Handler) GetTCOReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	fleetName := chi.URLParam(r, "fleet")

	report, err := h.reporter.TCOReport(ctx, domain.Fleet{Name: fleetName})
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err, "failed to build TCO report")
		return
	}
	writeJSON(w, r, report)
}

func (h *Handler) GetLicenseReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	fleetName := chi.URLParam(r, "fleet")

	report, err := h.reporter.LicenseReport(ctx, domain.Fleet{Name: fleetName})
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err, "failed to build license report")
		return
	}
	writeJSON(w, r, report)
}

func (h *Handler) ListReportConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := h.configs.List(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err, "failed to list report configs")
		return
	}

	response := make([]api.ReportConfig, 0, len(configs))
	for _, cfg := range configs {
		response = append(response, api.ReportConfigFromDomain(cfg))
	}
	writeJSON(w, r, response)
}

func (h *Handler) SaveReportConfig(w http.ResponseWriter, r *http.Request) {
	var payload api.ReportConfig
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid report config payload", http.StatusBadRequest)
		return
	}
	if payload.Name == "" {
		http.Error(w, "report config name is required", http.StatusBadRequest)
		return
	}

	if err := h.configs.Save(r.Context(), payload.ToDomain()); err != nil {
		writeError(w, r, http.StatusInternalServerError, err, "failed to save report config")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetReportConfig(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	cfg, err := h.configs.Get(r.Context(), name)
	if errors.Is(err, reportcfg.ErrNotFound) {
		http.Error(w, "report config not found", http.StatusNotFound)
		return
	}
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err, "failed to fetch report config")
		return
	}
	writeJSON(w, r, api.ReportConfigFromDomain(*cfg))
}

func (h *Handler) DeleteReportConfig(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	err := h.configs.Delete(r.Context(), name)
	if errors.Is(err, reportcfg.ErrNotFound) {
		http.Error(w, "report config not found", http.StatusNotFound)
		return
	}
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err, "failed to delete report config")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseMethod(raw string) (domain.Method, bool) {
	switch domain.Method(raw) {
	case "":
		return defaultMethod, true
	case domain.MethodStraightLine, domain.MethodDecliningBalance, domain.MethodSumOfYears:
		return domain.Method(raw), true
	default:
		return "", false
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error, msg string) {
	zerolog.Ctx(r.Context()).Error().Err(err).Msg(msg)
	http.Error(w, msg, status)
}
