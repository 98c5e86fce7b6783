package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/aalvaropc/healthgain/internal/app/report"
	"github.com/aalvaropc/healthgain/internal/domain"
	"github.com/aalvaropc/healthgain/internal/ports"
	"github.com/aalvaropc/healthgain/internal/usecase"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Handler serves the form, the result page and the estimate API.
type Handler struct {
	catalog   ports.LocaleCatalog
	estimator *usecase.EstimateGain
	locale    domain.Locale
	log       *slog.Logger
	now       func() time.Time
}

func NewHandler(catalog ports.LocaleCatalog, estimator *usecase.EstimateGain, locale domain.Locale, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if locale == "" {
		locale = domain.LocaleEN
	}
	return &Handler{
		catalog:   catalog,
		estimator: estimator,
		locale:    locale,
		log:       log,
		now:       time.Now,
	}
}

// Router builds the full route table with request logging.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware(h.log))
	h.RegisterRoutes(r)
	return r
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", h.Form).Methods(http.MethodGet)
	router.HandleFunc("/estimate", h.Result).Methods(http.MethodPost)
	router.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/estimate", h.EstimateJSON).Methods(http.MethodGet)
	api.HandleFunc("/estimate.txt", h.EstimateTXT).Methods(http.MethodGet)
	api.HandleFunc("/estimate.csv", h.EstimateCSV).Methods(http.MethodGet)
}

type pageData struct {
	Set      domain.TemplateSet
	Locale   domain.Locale
	Other    domain.Locale
	Input    domain.GainInput
	Female   bool
	Days     []int
	Drinks   []int
	Estimate *usecase.Estimate
	Percent  int
	TXTURL   template.URL
	CSVURL   template.URL
	Error    string
}

func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	locale, ts, ok := h.templateSet(w, r)
	if !ok {
		return
	}
	in := domain.DefaultGainInput()
	in.Sex = ts.Male

	h.render(w, http.StatusOK, h.page(locale, ts, in))
}

func (h *Handler) Result(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	locale, ts, ok := h.templateSet(w, r)
	if !ok {
		return
	}

	in, err := parseInput(r.Form, ts)
	if err != nil {
		h.writeError(w, err)
		return
	}

	est, err := h.estimator.Execute(r.Context(), in, usecase.EstimateOptions{Locale: locale})
	if err != nil {
		if domain.IsKind(err, domain.KindInvalidArgument) {
			data := h.page(locale, ts, in)
			data.Error = err.Error()
			h.render(w, http.StatusBadRequest, data)
			return
		}
		h.writeError(w, err)
		return
	}

	data := h.page(locale, ts, in)
	data.Estimate = &est
	data.Percent = int(est.Progress*100 + 0.5)
	q := r.Form.Encode()
	data.TXTURL = template.URL("/api/estimate.txt?" + q)
	data.CSVURL = template.URL("/api/estimate.csv?" + q)
	h.render(w, http.StatusOK, data)
}

func (h *Handler) EstimateJSON(w http.ResponseWriter, r *http.Request) {
	est, ok := h.estimate(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := report.WriteJSON(w, est.Result); err != nil {
		h.log.Error("http.write.failed", "err", err)
	}
}

func (h *Handler) EstimateTXT(w http.ResponseWriter, r *http.Request) {
	est, ok := h.estimate(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := report.WriteSummary(&buf, est.Set, est.Result, h.now()); err != nil {
		h.writeError(w, err)
		return
	}
	download(w, "text/plain; charset=utf-8", report.SummaryFileName, buf.Bytes())
}

func (h *Handler) EstimateCSV(w http.ResponseWriter, r *http.Request) {
	est, ok := h.estimate(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, est.Result); err != nil {
		h.writeError(w, err)
		return
	}
	download(w, "text/csv; charset=utf-8", report.CSVFileName, buf.Bytes())
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (h *Handler) estimate(w http.ResponseWriter, r *http.Request) (usecase.Estimate, bool) {
	locale, ts, ok := h.templateSet(w, r)
	if !ok {
		return usecase.Estimate{}, false
	}
	in, err := parseInput(r.URL.Query(), ts)
	if err != nil {
		h.writeError(w, err)
		return usecase.Estimate{}, false
	}
	est, err := h.estimator.Execute(r.Context(), in, usecase.EstimateOptions{Locale: locale})
	if err != nil {
		h.writeError(w, err)
		return usecase.Estimate{}, false
	}
	return est, true
}

func (h *Handler) templateSet(w http.ResponseWriter, r *http.Request) (domain.Locale, domain.TemplateSet, bool) {
	locale, err := localeFrom(r.URL.Query(), h.locale)
	if err == nil && r.Form != nil && r.Form.Get(paramLang) != "" {
		locale, err = localeFrom(r.Form, h.locale)
	}
	if err != nil {
		h.writeError(w, err)
		return "", domain.TemplateSet{}, false
	}
	ts, err := h.catalog.Lookup(locale)
	if err != nil {
		h.writeError(w, err)
		return "", domain.TemplateSet{}, false
	}
	return locale, ts, true
}

func (h *Handler) page(locale domain.Locale, ts domain.TemplateSet, in domain.GainInput) pageData {
	return pageData{
		Set:    ts,
		Locale: locale,
		Other:  locale.Toggle(),
		Input:  in,
		Female: in.Sex == ts.Female,
		Days:   seq(0, domain.MaxDaysPerWeek),
		Drinks: seq(0, domain.MaxDrinksPerOccasion),
	}
}

func (h *Handler) render(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := pageTmpl.ExecuteTemplate(&buf, "page.html", data); err != nil {
		h.log.Error("http.render.failed", "err", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsKind(err, domain.KindInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case domain.IsKind(err, domain.KindNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		h.log.Error("http.handler.failed", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func download(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(body)
}

func seq(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
