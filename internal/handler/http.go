package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sacandaga/calendarr/internal/config"
	"github.com/sacandaga/calendarr/internal/domain"
	"github.com/sacandaga/calendarr/internal/service"
	log "github.com/sirupsen/logrus"
)

const (
	contentTypeJSON = "application/json"
	welcomeMessage  = "Welcome to the Sacandaga Calendar Backend API!"

	msgEventNotFound  = "Event not found"
	msgInvalidPayload = "Invalid JSON payload"
	msgInternalError  = "An internal server error occurred"
)

type HTTPHandler struct {
	cfg      *config.Config
	eventSvc *service.EventService
}

func NewHTTPHandler(cfg *config.Config, eventSvc *service.EventService) *HTTPHandler {
	return &HTTPHandler{
		cfg:      cfg,
		eventSvc: eventSvc,
	}
}

func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", h.handleRoot)
	mux.HandleFunc("/event", h.handleEvents)
	mux.HandleFunc("/event/", h.handleEventByID)
	mux.HandleFunc("/health", h.handleHealth)
}

func (h *HTTPHandler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Invalid method", http.StatusMethodNotAllowed)
		return
	}
	h.writeJSON(w, http.StatusOK, welcomeMessage)
}

func (h *HTTPHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *HTTPHandler) handleEvents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listEvents(w, r)
	case http.MethodPost:
		h.createEvent(w, r)
	default:
		http.Error(w, "Invalid method", http.StatusMethodNotAllowed)
	}
}

func (h *HTTPHandler) handleEventByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/event/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.getEvent(w, r, id)
	case http.MethodPatch:
		h.updateEvent(w, r, id)
	case http.MethodDelete:
		h.deleteEvent(w, r, id)
	default:
		http.Error(w, "Invalid method", http.StatusMethodNotAllowed)
	}
}

func (h *HTTPHandler) listEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventSvc.List(r.Context())
	if err != nil {
		h.internalError(w, "failed to list events", err)
		return
	}
	h.writeJSON(w, http.StatusOK, events)
}

func (h *HTTPHandler) getEvent(w http.ResponseWriter, r *http.Request, id string) {
	event, err := h.eventSvc.Get(r.Context(), id)
	if errors.Is(err, domain.ErrEventNotFound) {
		h.writeError(w, http.StatusNotFound, msgEventNotFound)
		return
	}
	if err != nil {
		h.internalError(w, "failed to get event", err)
		return
	}
	h.writeJSON(w, http.StatusOK, event)
}

func (h *HTTPHandler) createEvent(w http.ResponseWriter, r *http.Request) {
	input, err := parseCreateEvent(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	event, err := h.eventSvc.Create(r.Context(), *input)
	if errors.Is(err, domain.ErrInvalidInput) {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.internalError(w, "failed to create event", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, event)
}

func (h *HTTPHandler) updateEvent(w http.ResponseWriter, r *http.Request, id string) {
	update, err := parseUpdateEvent(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	event, err := h.eventSvc.Update(r.Context(), id, *update)
	if errors.Is(err, domain.ErrEventNotFound) {
		h.writeError(w, http.StatusNotFound, msgEventNotFound)
		return
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.internalError(w, "failed to update event", err)
		return
	}
	h.writeJSON(w, http.StatusOK, event)
}

func (h *HTTPHandler) deleteEvent(w http.ResponseWriter, r *http.Request, id string) {
	err := h.eventSvc.Delete(r.Context(), id)
	if errors.Is(err, domain.ErrEventNotFound) {
		h.writeError(w, http.StatusNotFound, msgEventNotFound)
		return
	}
	if err != nil {
		h.internalError(w, "failed to delete event", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Event deleted successfully",
	})
}

func parseCreateEvent(r *http.Request) (*service.CreateEvent, error) {
	defer r.Body.Close()

	var body struct {
		Title           string  `json:"title"`
		BackgroundColor string  `json:"background_color"`
		Start           string  `json:"start"`
		End             string  `json:"end"`
		Description     *string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, err
	}

	return &service.CreateEvent{
		Title:           body.Title,
		BackgroundColor: body.BackgroundColor,
		Start:           body.Start,
		End:             body.End,
		Description:     body.Description,
	}, nil
}

// parseUpdateEvent decodes through a raw map so an absent field and an
// explicit null can be told apart, which PATCH needs for the nullable
// description.
func parseUpdateEvent(r *http.Request) (*service.UpdateEvent, error) {
	defer r.Body.Close()

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, err
	}

	var update service.UpdateEvent
	fields := map[string]**string{
		"title":            &update.Title,
		"background_color": &update.BackgroundColor,
		"start":            &update.Start,
		"end":              &update.End,
	}
	for name, target := range fields {
		value, ok := raw[name]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return nil, err
		}
		*target = &s
	}

	if value, ok := raw["description"]; ok {
		update.DescriptionSet = true
		if err := json.Unmarshal(value, &update.Description); err != nil {
			return nil, err
		}
	}

	return &update, nil
}

// internalError logs the failure and renders it for the client. Detail only
// leaves the process in development mode; production clients always receive
// the generic message.
func (h *HTTPHandler) internalError(w http.ResponseWriter, msg string, err error) {
	log.WithField("error", err).Error(msg)

	if h.cfg.DebugEnabled() {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeError(w, http.StatusInternalServerError, msgInternalError)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *HTTPHandler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.WithField("error", err).Error("failed to encode json response")
	}
}
