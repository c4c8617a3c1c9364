package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL, "test-token", 5*time.Second), srv
}

func TestBearerAndRequestIDHeaders(t *testing.T) {
	var gotAuth, gotRequestID, gotContentType string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"tokens_left":3}`))
	})
	defer srv.Close()

	if _, err := c.Predict(context.Background(), "hello"); err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Error("expected an X-Request-ID header")
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
}

func TestUnauthorizedMapsToSessionExpired(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	defer srv.Close()

	_, err := c.Predict(context.Background(), "hello")
	if !errors.Is(err, ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired, got %v", err)
	}
}

func TestPaymentRequiredMapsToTokensExhausted(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"detail":"TOKEN_FINISHED"}`))
	})
	defer srv.Close()

	_, err := c.Predict(context.Background(), "hello")
	if !errors.Is(err, ErrTokensExhausted) {
		t.Errorf("expected ErrTokensExhausted, got %v", err)
	}
}

func TestServerDetailSurfaced(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		w.Write([]byte(`{"detail":"Text too large"}`))
	})
	defer srv.Close()

	_, err := c.Predict(context.Background(), "hello")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusRequestEntityTooLarge || apiErr.Detail != "Text too large" {
		t.Errorf("unexpected APIError: %+v", apiErr)
	}
}

func TestErrorWithoutDetailFallsBack(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("plain text failure"))
	})
	defer srv.Close()

	_, err := c.Predict(context.Background(), "hello")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if !strings.Contains(apiErr.Error(), "500") {
		t.Errorf("fallback message should mention the status, got %q", apiErr.Error())
	}
}

func TestTransportFailure(t *testing.T) {
	c := New("http://127.0.0.1:1", "tok", 500*time.Millisecond)
	_, err := c.Predict(context.Background(), "hello")
	if !errors.Is(err, ErrServerUnreachable) {
		t.Errorf("expected ErrServerUnreachable, got %v", err)
	}
}

func TestNonJSONSuccessBodyIsNotAnError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})
	defer srv.Close()

	entries, err := c.MyHistory(context.Background())
	if err != nil {
		t.Fatalf("decode failure must not error: %v", err)
	}
	if entries != nil {
		t.Errorf("expected nil entries for a non-array body, got %v", entries)
	}
}

func TestMyHistoryDecodesArray(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"1","scanned_text":"abc","result":"AI","ai_percent":70,"human_percent":30,"timestamp":"2026-08-30T10:00:00Z"}]`))
	})
	defer srv.Close()

	entries, err := c.MyHistory(context.Background())
	if err != nil {
		t.Fatalf("MyHistory: %v", err)
	}
	if len(entries) != 1 || entries[0].Result != "AI" || entries[0].AIPercent != 70 {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestExtractFileIsMultipart(t *testing.T) {
	var gotContentType string
	var gotText string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		file, _, err := r.FormFile("file")
		if err == nil {
			buf := make([]byte, 64)
			n, _ := file.Read(buf)
			gotText = string(buf[:n])
			file.Close()
		}
		w.Write([]byte(`{"filename":"essay.txt","text":"Hello world.","characters":12}`))
	})
	defer srv.Close()

	res, err := c.ExtractFile(context.Background(), "essay.txt", strings.NewReader("Hello world."))
	if err != nil {
		t.Fatalf("ExtractFile: %v", err)
	}
	if !strings.HasPrefix(gotContentType, "multipart/form-data") {
		t.Errorf("Content-Type = %q, want multipart", gotContentType)
	}
	if gotText != "Hello world." {
		t.Errorf("uploaded content = %q", gotText)
	}
	if res.Characters != 12 {
		t.Errorf("characters = %d", res.Characters)
	}
}

func TestLoginRejectsTokenlessSuccess(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	defer srv.Close()

	if _, err := c.Login(context.Background(), "a@b.c", "pw"); err == nil {
		t.Error("expected error for a login response without a token")
	}
}

func TestAdminRoutes(t *testing.T) {
	var paths []string
	var methods []string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		methods = append(methods, r.Method)
		switch r.URL.Path {
		case "/admin/users":
			w.Write([]byte(`[{"id":"u1","email":"a@b.c","tokens":5,"role":"user"}]`))
		default:
			w.Write([]byte(`{"message":"ok"}`))
		}
	})
	defer srv.Close()

	ctx := context.Background()
	rows, err := c.ListUsers(ctx)
	if err != nil || len(rows) != 1 {
		t.Fatalf("ListUsers: %v %v", rows, err)
	}
	if err := c.UpdateTokens(ctx, "u1", 10); err != nil {
		t.Fatalf("UpdateTokens: %v", err)
	}
	if err := c.UpdateMaxUsers(ctx, "u1", 3); err != nil {
		t.Fatalf("UpdateMaxUsers: %v", err)
	}
	if err := c.DeleteUser(ctx, "u1"); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	want := []string{"/admin/users", "/admin/users/u1/tokens", "/admin/users/u1/max-users", "/admin/users/u1"}
	wantMethods := []string{http.MethodGet, http.MethodPatch, http.MethodPatch, http.MethodDelete}
	for i := range want {
		if paths[i] != want[i] || methods[i] != wantMethods[i] {
			t.Errorf("call %d: %s %s, want %s %s", i, methods[i], paths[i], wantMethods[i], want[i])
		}
	}
}
