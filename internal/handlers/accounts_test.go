package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"chirp/internal/models"
	"chirp/internal/service"
	"chirp/internal/store/sqlstore"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	st, err := sqlstore.New("sqlite3", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })

	accountHandler := &AccountHandler{Service: service.NewAccountService(st, nil)}
	messageHandler := &MessageHandler{Service: service.NewMessageService(st)}

	r := mux.NewRouter()
	r.HandleFunc("/register", accountHandler.Register).Methods("POST")
	r.HandleFunc("/login", accountHandler.Login).Methods("POST")
	r.HandleFunc("/messages", messageHandler.CreateMessage).Methods("POST")
	r.HandleFunc("/messages", messageHandler.GetAllMessages).Methods("GET")
	r.HandleFunc("/messages/{id}", messageHandler.GetMessageByID).Methods("GET")
	r.HandleFunc("/messages/{id}", messageHandler.DeleteMessage).Methods("DELETE")
	r.HandleFunc("/messages/{id}", messageHandler.UpdateMessage).Methods("PATCH")
	r.HandleFunc("/accounts/{id}/messages", messageHandler.GetMessagesByAccount).Methods("GET")
	r.HandleFunc("/accounts/{id}", accountHandler.GetAccount).Methods("GET")
	return r
}

func doJSON(t *testing.T, r *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRegister(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, "POST", "/register", Credentials{Username: "testuser", Password: "password123"})
	if rr.Code != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}

	var account models.Account
	if err := json.Unmarshal(rr.Body.Bytes(), &account); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if account.ID == 0 || account.Username != "testuser" || account.Password != "password123" {
		t.Errorf("Unexpected account in response: %+v", account)
	}

	// Duplicate username
	rr = doJSON(t, router, "POST", "/register", Credentials{Username: "testuser", Password: "password123"})
	if rr.Code != http.StatusConflict {
		t.Errorf("handler returned wrong status code for duplicate user: got %v want %v", rr.Code, http.StatusConflict)
	}

	// Short password
	rr = doJSON(t, router, "POST", "/register", Credentials{Username: "other", Password: "abcd"})
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("handler returned wrong status code for short password: got %v want %v", rr.Code, http.StatusUnauthorized)
	}

	// Short password on a taken username still reports the policy failure
	rr = doJSON(t, router, "POST", "/register", Credentials{Username: "testuser", Password: "abcd"})
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("handler returned wrong status code for short password on duplicate: got %v want %v", rr.Code, http.StatusUnauthorized)
	}
}

func TestLogin(t *testing.T) {
	router := newTestRouter(t)
	doJSON(t, router, "POST", "/register", Credentials{Username: "testuser", Password: "password123"})

	rr := doJSON(t, router, "POST", "/login", Credentials{Username: "testuser", Password: "password123"})
	if rr.Code != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}

	var account models.Account
	if err := json.Unmarshal(rr.Body.Bytes(), &account); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if account.ID == 0 || account.Password != "password123" {
		t.Errorf("Expected the stored record back, got %+v", account)
	}

	rr = doJSON(t, router, "POST", "/login", Credentials{Username: "testuser", Password: "wrongpass"})
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("handler returned wrong status code for bad password: got %v want %v", rr.Code, http.StatusUnauthorized)
	}

	rr = doJSON(t, router, "POST", "/login", Credentials{Username: "ghost", Password: "password123"})
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("handler returned wrong status code for unknown user: got %v want %v", rr.Code, http.StatusUnauthorized)
	}
}

func TestGetAccount(t *testing.T) {
	router := newTestRouter(t)
	doJSON(t, router, "POST", "/register", Credentials{Username: "testuser", Password: "password123"})

	rr := doJSON(t, router, "GET", "/accounts/1", nil)
	if rr.Code != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}

	var account models.Account
	json.Unmarshal(rr.Body.Bytes(), &account)
	if account.Username != "testuser" {
		t.Errorf("Expected username 'testuser', got '%s'", account.Username)
	}
	if account.Password != "" {
		t.Error("Expected password to be omitted from the account view")
	}

	rr = doJSON(t, router, "GET", "/accounts/9999", nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("handler returned wrong status code for unknown account: got %v want %v", rr.Code, http.StatusNotFound)
	}
}
