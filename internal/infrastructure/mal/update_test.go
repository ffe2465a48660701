package mal

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"ListMender/internal/domain"
)

func TestUpdateClientSubmitBothDates(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	var gotForm url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotForm, _ = url.ParseQuery(string(body))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewUpdateClient(Options{
		APIBaseURL:  server.URL,
		AccessToken: "secret",
		HTTPClient:  server.Client(),
	})

	patch := domain.DatePatch{
		StartDate:  domain.MustDate("2021-01-03"),
		FinishDate: domain.MustDate("2021-01-05"),
	}
	status, err := client.Submit(context.Background(), 30, domain.ListAnime, patch)
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("unexpected status: %d", status)
	}

	if gotMethod != http.MethodPut {
		t.Fatalf("expected PUT, got %s", gotMethod)
	}
	if gotPath != "/anime/30/my_list_status" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotForm.Get("start_date") != "2021-01-03" || gotForm.Get("finish_date") != "2021-01-05" {
		t.Fatalf("unexpected form: %v", gotForm)
	}
}

func TestUpdateClientSubmitFinishOnlyOmitsStart(t *testing.T) {
	t.Parallel()

	var gotForm url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotForm, _ = url.ParseQuery(string(body))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewUpdateClient(Options{APIBaseURL: server.URL, HTTPClient: server.Client()})

	patch := domain.DatePatch{FinishDate: domain.MustDate("2021-01-05")}
	if _, err := client.Submit(context.Background(), 7, domain.ListManga, patch); err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	if _, present := gotForm["start_date"]; present {
		t.Fatalf("start_date must not be transmitted: %v", gotForm)
	}
	if gotForm.Get("finish_date") != "2021-01-05" {
		t.Fatalf("unexpected form: %v", gotForm)
	}
}

func TestUpdateClientRefusesEmptyPatch(t *testing.T) {
	t.Parallel()

	client := NewUpdateClient(Options{APIBaseURL: "http://unused"})

	if _, err := client.Submit(context.Background(), 1, domain.ListAnime, domain.DatePatch{}); err == nil {
		t.Fatal("expected error for empty patch")
	}
}
