package apiserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/domaos/domain-radar/pkg/backend"
	"github.com/domaos/domain-radar/pkg/model"
	"github.com/domaos/domain-radar/pkg/version"
	"github.com/gorilla/mux"
)

type handler struct {
	backend backend.Backend
}

func newHandler(b backend.Backend) *handler {
	return &handler{
		backend: b,
	}
}

func (h *handler) root(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, version.Get())
}

func (h *handler) analyze(w http.ResponseWriter, r *http.Request) {
	var input model.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(input.Domains) == 0 {
		writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("must supply at least one domain"))
		return
	}

	writeSuccess(w, h.backend.Analyze(input.Domains))
}

func (h *handler) listDomains(w http.ResponseWriter, r *http.Request) {
	tld := r.URL.Query().Get("tld")
	if tld == "" {
		writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("tld query parameter must be provided"))
		return
	}

	domains, err := h.backend.DomainsByTld(tld, queryInt(r, "limit"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeSuccess(w, domains)
}

func (h *handler) topDomains(w http.ResponseWriter, r *http.Request) {
	domains, err := h.backend.TopDomains(queryInt(r, "limit"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeSuccess(w, domains)
}

func (h *handler) getDomain(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	domain, err := h.backend.DomainByName(name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if domain.ID == 0 {
		writeError(w, http.StatusNotFound, fmt.Errorf("domain %s not found", name))
		return
	}
	writeSuccess(w, domain)
}

func (h *handler) searchDomains(w http.ResponseWriter, r *http.Request) {
	sld := r.URL.Query().Get("sld")
	if sld == "" {
		writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("sld query parameter must be provided"))
		return
	}

	domains, err := h.backend.SearchDomains(sld, queryInt(r, "limit"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeSuccess(w, domains)
}

func (h *handler) supportedTlds(w http.ResponseWriter, r *http.Request) {
	tlds, err := h.backend.SupportedTlds()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeSuccess(w, tlds)
}

func (h *handler) allTldStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.backend.AllTldStats(queryInt(r, "limit"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeSuccess(w, stats)
}

func (h *handler) tldStats(w http.ResponseWriter, r *http.Request) {
	tld := mux.Vars(r)["tld"]

	stat, trend, err := h.backend.TldStats(tld)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if stat.ID == 0 {
		writeError(w, http.StatusNotFound, fmt.Errorf("no stats for tld %s", tld))
		return
	}

	writeSuccess(w, map[string]interface{}{
		"tld":          stat.Tld,
		"averageScore": stat.AverageScore,
		"domainCount":  stat.DomainCount,
		"weeklyTrend":  trend,
		"lastUpdated":  stat.LastUpdated,
	})
}

func (h *handler) tldTrends(w http.ResponseWriter, r *http.Request) {
	tldsParam := r.URL.Query().Get("tlds")
	if tldsParam == "" {
		writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("tlds query parameter must be provided"))
		return
	}

	trends, err := h.backend.TldTrends(strings.Split(tldsParam, ","), queryInt(r, "weeks"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeSuccess(w, trends)
}

func (h *handler) ingest(w http.ResponseWriter, r *http.Request) {
	var input model.IngestRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	result := h.backend.Ingest(r.Context(), input.BatchSize, input.MaxBatches, input.Tlds)
	writeSuccess(w, result)
}

func (h *handler) refresh(w http.ResponseWriter, r *http.Request) {
	var input model.RefreshRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	switch {
	case input.DomainName != "":
		writeSuccess(w, h.backend.RefreshDomain(r.Context(), input.DomainName))
	case input.Tld != "":
		writeSuccess(w, h.backend.RefreshTld(r.Context(), input.Tld))
	default:
		writeSuccess(w, h.backend.RefreshAll(r.Context()))
	}
}

// queryInt reads an optional integer query parameter, 0 when absent or
// unparsable. The backend applies its own defaults for 0.
func queryInt(r *http.Request, key string) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
