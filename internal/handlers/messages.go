package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"chirp/internal/models"
	"chirp/internal/service"
	"chirp/internal/ws"
)

type MessageHandler struct {
	Service *service.MessageService
	Hub     *ws.Hub
}

func (h *MessageHandler) publish(eventType ws.EventType, message models.Message) {
	if h.Hub != nil {
		h.Hub.Broadcast(ws.Event{Type: eventType, Message: message})
	}
}

func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var message models.Message
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.Service.Create(message)
	switch {
	case errors.Is(err, service.ErrMessageLength):
		http.Error(w, "Message does not comply with length parameters", http.StatusBadRequest)
	case errors.Is(err, service.ErrAccountNotFound):
		http.Error(w, "Account Not Found", http.StatusBadRequest)
	case err != nil:
		w.WriteHeader(http.StatusBadRequest)
	default:
		json.NewEncoder(w).Encode(created)
		h.publish(ws.EventMessageCreated, created)
	}
}

func (h *MessageHandler) GetAllMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Service.GetAll()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(messages)
}

// GetMessageByID keeps the original silent not-found contract: an absent id
// answers 200 with an empty body rather than 404.
func (h *MessageHandler) GetMessageByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid message id", http.StatusBadRequest)
		return
	}

	message, err := h.Service.GetByID(id)
	switch {
	case errors.Is(err, service.ErrMessageNotFound):
		w.WriteHeader(http.StatusOK)
	case err != nil:
		w.WriteHeader(http.StatusBadRequest)
	default:
		json.NewEncoder(w).Encode(message)
	}
}

// DeleteMessage answers 200 with body "1" on success and 200 with an empty
// body when the id never existed, mirroring a rows-affected count.
func (h *MessageHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid message id", http.StatusBadRequest)
		return
	}

	err = h.Service.Delete(id)
	switch {
	case errors.Is(err, service.ErrMessageNotFound):
		w.WriteHeader(http.StatusOK)
	case err != nil:
		w.WriteHeader(http.StatusBadRequest)
	default:
		json.NewEncoder(w).Encode(1)
		h.publish(ws.EventMessageDeleted, models.Message{ID: id})
	}
}

// UpdateMessage patches the message text. Every failure, not-found included,
// maps to 400 on this route.
func (h *MessageHandler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid message id", http.StatusBadRequest)
		return
	}

	var patch models.Message
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.Service.Update(id, patch.MessageText)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	json.NewEncoder(w).Encode(1)
	h.publish(ws.EventMessageUpdated, updated)
}

func (h *MessageHandler) GetMessagesByAccount(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid account id", http.StatusBadRequest)
		return
	}

	messages, err := h.Service.GetByAccountID(id)
	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		http.Error(w, "Account Not Found", http.StatusBadRequest)
	case err != nil:
		w.WriteHeader(http.StatusBadRequest)
	default:
		json.NewEncoder(w).Encode(messages)
	}
}
