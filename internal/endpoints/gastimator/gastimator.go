package gastimator

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/VinothKuppanna/gastimator/internal/endpoints/places"
	"github.com/VinothKuppanna/gastimator/internal/utils"
	"github.com/VinothKuppanna/gastimator/pkg/domain"
	"github.com/VinothKuppanna/gastimator/pkg/domain/definition"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gorilla/mux"
)

const (
	PathHome            = "/"
	PathGastimations    = "/gastimations"
	PathNewGastimation  = "/gastimations/new"
	SessionCookie       = "gastimator_session"
	fieldStartAddress   = "start"
	fieldEndAddress     = "end"
	fieldEfficiency     = "mileage"
	fieldFuelPrice      = "gasPrice"
	pageTemplate        = "page.html"
	defaultCurrencyName = "CAD"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Gastimations interface {
	Submit(ctx context.Context, session *domain.Session, input definition.TripInput) (*definition.Gastimation, error)
	NewCalculation(session *domain.Session) (*definition.Gastimation, error)
}

type Sessions interface {
	FindOrCreate(id string) (session *domain.Session, created bool)
}

// Currency labels prices and totals on the page; no conversion is done.
type Currency string

type Handler struct {
	gastimations Gastimations
	sessions     Sessions
	templates    *template.Template
	currency     string
	logger       log.Logger
}

type page struct {
	*definition.Gastimation
	Currency         string
	AutocompletePath string
	DetailsPath      string
}

func NewHandler(gastimations Gastimations, sessions Sessions, currency Currency, logger log.Logger) (*Handler, error) {
	templates, err := template.New("gastimator").Funcs(template.FuncMap{
		"fixed": utils.Fixed,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	if len(currency) == 0 {
		currency = defaultCurrencyName
	}
	return &Handler{
		gastimations: gastimations,
		sessions:     sessions,
		templates:    templates,
		currency:     string(currency),
		logger:       log.With(logger, "endpoint", "gastimator"),
	}, nil
}

func (h *Handler) SetupRouts(router *mux.Router) {
	router.HandleFunc(PathHome, h.show).Methods(http.MethodGet)
	router.HandleFunc(PathGastimations, h.submit).Methods(http.MethodPost)
	router.HandleFunc(PathNewGastimation, h.newGastimation).Methods(http.MethodPost)
}

func (h *Handler) show(resp http.ResponseWriter, req *http.Request) {
	session := h.session(resp, req)
	h.render(resp, session.Snapshot())
}

func (h *Handler) submit(resp http.ResponseWriter, req *http.Request) {
	if err := req.ParseForm(); err != nil {
		http.Error(resp, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	session := h.session(resp, req)
	input := definition.TripInput{
		StartAddress: req.PostForm.Get(fieldStartAddress),
		EndAddress:   req.PostForm.Get(fieldEndAddress),
		Efficiency:   req.PostForm.Get(fieldEfficiency),
		FuelPrice:    req.PostForm.Get(fieldFuelPrice),
	}
	if _, err := h.gastimations.Submit(req.Context(), session, input); err != nil {
		_ = level.Debug(h.logger).Log("msg", "submission rejected", "session", session.ID, "err", err)
	}
	http.Redirect(resp, req, PathHome, http.StatusSeeOther)
}

func (h *Handler) newGastimation(resp http.ResponseWriter, req *http.Request) {
	session := h.session(resp, req)
	if _, err := h.gastimations.NewCalculation(session); err != nil {
		_ = level.Debug(h.logger).Log("msg", "reset ignored", "session", session.ID, "err", err)
	}
	http.Redirect(resp, req, PathHome, http.StatusSeeOther)
}

func (h *Handler) session(resp http.ResponseWriter, req *http.Request) *domain.Session {
	var id string
	if cookie, err := req.Cookie(SessionCookie); err == nil {
		id = cookie.Value
	}
	session, created := h.sessions.FindOrCreate(id)
	if created {
		http.SetCookie(resp, &http.Cookie{
			Name:     SessionCookie,
			Value:    session.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return session
}

func (h *Handler) render(resp http.ResponseWriter, gastimation *definition.Gastimation) {
	resp.Header().Set("Content-Type", "text/html; charset=utf-8")
	resp.Header().Set("Cache-Control", "no-store")
	err := h.templates.ExecuteTemplate(resp, pageTemplate, &page{
		Gastimation:      gastimation,
		Currency:         h.currency,
		AutocompletePath: places.PathAutocomplete,
		DetailsPath:      places.PathDetails,
	})
	if err != nil {
		_ = level.Error(h.logger).Log("msg", "failed to render page", "err", err)
	}
}
