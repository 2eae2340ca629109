package middleware

import (
	"bufio"
	"bytes"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestRequestLogger(t *testing.T) {
	// Mock next handler that returns 404
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	var buf bytes.Buffer
	log := zerolog.New(&buf)

	req := httptest.NewRequest("GET", "/missing", nil)
	rr := httptest.NewRecorder()

	RequestLogger(log)(nextHandler).ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("handler returned wrong status code: got %v want %v",
			rr.Code, http.StatusNotFound)
	}

	line := buf.String()
	if !strings.Contains(line, `"status":404`) {
		t.Errorf("Expected logged status 404, got %q", line)
	}
	if !strings.Contains(line, `"path":"/missing"`) {
		t.Errorf("Expected logged path, got %q", line)
	}
}

func TestRequestLogger_DefaultStatus(t *testing.T) {
	// A handler that never calls WriteHeader logs 200
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	var buf bytes.Buffer
	log := zerolog.New(&buf)

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	RequestLogger(log)(nextHandler).ServeHTTP(rr, req)

	if !strings.Contains(buf.String(), `"status":200`) {
		t.Errorf("Expected logged status 200, got %q", buf.String())
	}
}

// MockHijacker implements http.Hijacker for testing
type MockHijacker struct {
	httptest.ResponseRecorder
}

func (m *MockHijacker) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return nil, nil, nil
}

func TestRequestLogger_Hijack(t *testing.T) {
	// Mock next handler that tries to hijack through the wrapper
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hijacker, ok := w.(http.Hijacker)
		if !ok {
			t.Error("ResponseWriter does not implement http.Hijacker")
			return
		}
		if _, _, err := hijacker.Hijack(); err != nil {
			t.Errorf("Hijack failed: %v", err)
		}
	})

	req := httptest.NewRequest("GET", "/ws", nil)
	mockWriter := &MockHijacker{ResponseRecorder: *httptest.NewRecorder()}

	RequestLogger(zerolog.Nop())(nextHandler).ServeHTTP(mockWriter, req)
}
