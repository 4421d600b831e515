package marker

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSubmit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Api-Key"); got != "test-key" {
			t.Errorf("X-Api-Key = %q, want test-key", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("failed to parse multipart form: %v", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file field: %v", err)
		}
		defer file.Close()
		if header.Filename != "deck.pdf" {
			t.Errorf("filename = %q, want deck.pdf", header.Filename)
		}
		if got := r.FormValue("output_format"); got != "markdown" {
			t.Errorf("output_format = %q, want markdown", got)
		}
		fmt.Fprintf(w, `{"success":true,"request_id":"req-1","request_check_url":"%s/check/req-1"}`, "http://"+r.Host)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	result, err := client.Submit(context.Background(), "deck.pdf", strings.NewReader("%PDF-1.4 fake"))
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if result.RequestID != "req-1" {
		t.Errorf("RequestID = %q", result.RequestID)
	}
	if result.CheckURL == "" {
		t.Error("CheckURL is empty")
	}
}

func TestSubmitRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"error":"invalid api key"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-key")
	_, err := client.Submit(context.Background(), "deck.pdf", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected error on rejected submission")
	}
	if !strings.Contains(err.Error(), "invalid api key") {
		t.Errorf("error = %v, want api error surfaced", err)
	}
}

func TestWaitPollsUntilComplete(t *testing.T) {
	var polls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		polls++
		if polls < 3 {
			w.Write([]byte(`{"status":"processing","success":false}`))
			return
		}
		w.Write([]byte(`{"status":"complete","success":true,"markdown":"# Slide 1"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	result, err := client.Wait(context.Background(), server.URL, 5*time.Millisecond)
	if err != nil {
		t.Fatalf("Wait returned error: %v", err)
	}
	if polls < 3 {
		t.Errorf("polls = %d, want at least 3", polls)
	}
	if result.Markdown != "# Slide 1" {
		t.Errorf("Markdown = %q", result.Markdown)
	}
}

func TestWaitFailedJob(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"complete","success":false,"error":"corrupt pdf"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.Wait(context.Background(), server.URL, 5*time.Millisecond)
	if err == nil {
		t.Fatal("expected error on failed job")
	}
	if !strings.Contains(err.Error(), "corrupt pdf") {
		t.Errorf("error = %v, want job error surfaced", err)
	}
}

func TestWaitContextExpiry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"processing"}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	client := NewClient(server.URL, "test-key")
	if _, err := client.Wait(ctx, server.URL, 5*time.Millisecond); err == nil {
		t.Fatal("expected timeout error")
	}
}
