package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/srgjo27/tour_wizard/internal/core/domain"
	"github.com/srgjo27/tour_wizard/internal/core/services"
	"github.com/srgjo27/tour_wizard/internal/core/wizard"
)

const (
	SessionCookie = "wizard_session"
	SessionHeader = "X-Wizard-Session"

	maxUploadBytes = 6 << 20
)

type WizardHandler struct {
	svc        *services.WizardService
	log        *zap.Logger
	sessionTTL time.Duration
}

func NewWizardHandler(svc *services.WizardService, sessionTTL time.Duration, log *zap.Logger) *WizardHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &WizardHandler{svc: svc, log: log, sessionTTL: sessionTTL}
}

func (h *WizardHandler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/catalog", h.GetCatalog)

	r.Route("/wizard", func(r chi.Router) {
		r.Post("/", h.Start)
		r.Get("/", h.GetState)
		r.Delete("/", h.Reset)

		r.Put("/contact", h.UpdateContact)
		r.Put("/services", h.UpdateServices)
		r.Put("/payment-plan", h.ChoosePaymentPlan)
		r.Put("/payment-method", h.ChoosePaymentMethod)
		r.Post("/receipt", h.UploadReceipt)

		r.Post("/advance", h.Advance)
		r.Post("/retreat", h.Retreat)
		r.Post("/submit", h.Submit)
	})

	return r
}

type startRequest struct {
	BookingOption domain.BookingOption `json:"bookingOption"`
}

func (h *WizardHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	st, err := h.svc.Start(r.Context(), req.BookingOption)
	if err != nil {
		h.writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    st.SessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.sessionTTL.Seconds()),
	})
	writeJSON(w, http.StatusCreated, st)
}

func (h *WizardHandler) GetState(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.State(r.Context(), sessionID(r))
	h.respond(w, st, err)
}

func (h *WizardHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reset(r.Context(), sessionID(r)); err != nil {
		h.writeError(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: "", Path: "/", MaxAge: -1})
	w.WriteHeader(http.StatusNoContent)
}

func (h *WizardHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var in wizard.ContactInput
	if !decode(w, r, &in) {
		return
	}
	st, err := h.svc.UpdateContact(r.Context(), sessionID(r), in)
	h.respond(w, st, err)
}

func (h *WizardHandler) UpdateServices(w http.ResponseWriter, r *http.Request) {
	var in wizard.ServicesInput
	if !decode(w, r, &in) {
		return
	}
	st, err := h.svc.UpdateServices(r.Context(), sessionID(r), in)
	h.respond(w, st, err)
}

func (h *WizardHandler) ChoosePaymentPlan(w http.ResponseWriter, r *http.Request) {
	var in wizard.PaymentPlanInput
	if !decode(w, r, &in) {
		return
	}
	st, err := h.svc.ChoosePaymentPlan(r.Context(), sessionID(r), in)
	h.respond(w, st, err)
}

func (h *WizardHandler) ChoosePaymentMethod(w http.ResponseWriter, r *http.Request) {
	var in wizard.PaymentMethodInput
	if !decode(w, r, &in) {
		return
	}
	st, err := h.svc.ChoosePaymentMethod(r.Context(), sessionID(r), in)
	h.respond(w, st, err)
}

func (h *WizardHandler) UploadReceipt(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("receipt")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "receipt file is required"})
		return
	}
	defer file.Close()

	st, err := h.svc.UploadReceipt(r.Context(), sessionID(r), header.Filename, file)
	h.respond(w, st, err)
}

func (h *WizardHandler) Advance(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Advance(r.Context(), sessionID(r))
	h.respond(w, st, err)
}

func (h *WizardHandler) Retreat(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Retreat(r.Context(), sessionID(r))
	h.respond(w, st, err)
}

func (h *WizardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Submit(r.Context(), sessionID(r))
	h.respond(w, st, err)
}

type catalogResponse struct {
	TourRates       map[domain.TourCategory][]domain.Tier `json:"tourRates"`
	TourItems       []domain.TourItem                     `json:"tourItems"`
	Vehicles        []domain.Vehicle                      `json:"vehicles"`
	VanDestinations []domain.VanDestination               `json:"vanDestinations"`
	Hotels          []domain.Hotel                        `json:"hotels"`
	DivingRate      int64                                 `json:"divingRatePerDiver"`
	PaymentMethods  map[domain.PaymentMethod]string       `json:"paymentMethods"`
}

func (h *WizardHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	rates := make(map[domain.TourCategory][]domain.Tier, len(domain.TourCategories))
	for _, c := range domain.TourCategories {
		rates[c] = domain.TourRates(c)
	}

	methods := make(map[domain.PaymentMethod]string)
	for _, m := range []domain.PaymentMethod{domain.MethodGCash, domain.MethodPayMaya, domain.MethodBanking} {
		methods[m] = m.DisplayName()
	}

	writeJSON(w, http.StatusOK, catalogResponse{
		TourRates:       rates,
		TourItems:       domain.TourItems,
		Vehicles:        domain.Vehicles,
		VanDestinations: domain.VanDestinations,
		Hotels:          domain.Hotels,
		DivingRate:      domain.DivingRatePerDiver,
		PaymentMethods:  methods,
	})
}

func (h *WizardHandler) respond(w http.ResponseWriter, st *services.State, err error) {
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *WizardHandler) writeError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	var missing *domain.FieldMissingError

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":     verr.Error(),
			"step":      verr.Step,
			"fields":    verr.Fields,
			"invariant": verr.Invariant,
		})
	case errors.As(err, &missing):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": missing.Error(), "field": missing.Field})
	case errors.Is(err, domain.ErrNoSession):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrReceiptMissing),
		errors.Is(err, domain.ErrAlreadySubmitted),
		errors.Is(err, domain.ErrTerminalStep),
		errors.Is(err, domain.ErrFirstStep):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrReceiptTooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrBackendRejected):
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": domain.ErrBackendRejected.Error()})
	default:
		h.log.Error("wizard request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func sessionID(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	return r.Header.Get(SessionHeader)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
