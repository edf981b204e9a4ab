package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anishghimire862/ticket-booking-frontend/internal/models"
)

func TestCatalogClient_ListEvents(t *testing.T) {
	t.Parallel()

	t.Run("decodes the event listing", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/events" || r.Method != http.MethodGet {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			json.NewEncoder(w).Encode([]models.EventSummary{
				{ID: 10, Name: "Ultimate Music Night", StartsAt: "2026-09-12T19:00:00Z"},
			})
		}))
		defer server.Close()

		events, err := NewCatalogClient(server.URL).ListEvents(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(events) != 1 || events[0].ID != 10 || events[0].Name != "Ultimate Music Night" {
			t.Fatalf("unexpected events: %+v", events)
		}
	})

	t.Run("empty catalog is a successful empty list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		events, err := NewCatalogClient(server.URL).ListEvents(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(events) != 0 {
			t.Fatalf("expected empty list, got %+v", events)
		}
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		if _, err := NewCatalogClient(server.URL).ListEvents(context.Background()); err == nil {
			t.Fatalf("expected an error")
		}
	})

	t.Run("unreachable service is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		if _, err := NewCatalogClient(server.URL).ListEvents(context.Background()); err == nil {
			t.Fatalf("expected an error")
		}
	})
}

func TestCatalogClient_GetEvent(t *testing.T) {
	t.Parallel()

	t.Run("decodes the event detail", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/events/10" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			json.NewEncoder(w).Encode(models.EventDetail{
				ID:       10,
				Name:     "Ultimate Music Night",
				StartsAt: "2026-09-12T19:00:00Z",
				Tiers: []models.EventTier{
					{ID: 1, Code: "GA", DisplayName: "General Admission", PriceCents: 1000, AvailableQuantity: 5},
				},
			})
		}))
		defer server.Close()

		event, err := NewCatalogClient(server.URL).GetEvent(context.Background(), 10)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if event.ID != 10 || len(event.Tiers) != 1 || event.Tiers[0].Code != "GA" {
			t.Fatalf("unexpected event: %+v", event)
		}
	})

	t.Run("404 is a not-found error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		if _, err := NewCatalogClient(server.URL).GetEvent(context.Background(), 99); err == nil {
			t.Fatalf("expected an error")
		}
	})
}
