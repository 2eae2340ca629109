package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"chirp/internal/models"
	"chirp/internal/service"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AccountHandler struct {
	Service *service.AccountService
}

// Register responds 200 with the created account, 409 on a duplicate
// username, 401 when the password policy is not met and 400 for anything
// else.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var account models.Account
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	registered, err := h.Service.Register(account)
	switch {
	case errors.Is(err, service.ErrDuplicateUser):
		http.Error(w, "Registration Failed", http.StatusConflict)
	case errors.Is(err, service.ErrMinPasswordLength):
		http.Error(w, "Minimum Password Length Not Met", http.StatusUnauthorized)
	case err != nil:
		http.Error(w, "Internal Service Error", http.StatusBadRequest)
	default:
		json.NewEncoder(w).Encode(registered)
	}
}

// Login responds 200 with the full stored account, 401 on bad credentials.
// There is no session or token: the account record itself is the response.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	account, err := h.Service.Login(creds.Username, creds.Password)
	switch {
	case errors.Is(err, service.ErrLogin):
		http.Error(w, "Login Error", http.StatusUnauthorized)
	case err != nil:
		w.WriteHeader(http.StatusBadRequest)
	default:
		json.NewEncoder(w).Encode(account)
	}
}

// GetAccount exposes a single account with the password omitted.
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid account id", http.StatusBadRequest)
		return
	}

	account, err := h.Service.GetByID(id)
	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		http.Error(w, "Account Not Found", http.StatusNotFound)
	case err != nil:
		http.Error(w, "Internal Service Error", http.StatusInternalServerError)
	default:
		account.Password = ""
		json.NewEncoder(w).Encode(account)
	}
}
