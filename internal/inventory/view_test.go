package inventory

import (
	"testing"

	"github.com/anishghimire862/ticket-booking-frontend/internal/models"
)

func sampleEvent() models.EventDetail {
	return models.EventDetail{
		ID:       10,
		Name:     "Ultimate Music Night",
		StartsAt: "2026-09-12T19:00:00Z",
		Tiers: []models.EventTier{
			{ID: 1, Code: "GA", DisplayName: "General Admission", PriceCents: 1000, AvailableQuantity: 5},
			{ID: 2, Code: "VIP", DisplayName: "VIP", PriceCents: 2500, AvailableQuantity: 4},
		},
	}
}

func TestView(t *testing.T) {
	t.Parallel()

	t.Run("empty until loaded", func(t *testing.T) {
		view := NewView()
		if _, ok := view.Event(); ok {
			t.Fatalf("expected no event before Load")
		}
		if _, ok := view.TierByID(1); ok {
			t.Fatalf("expected no tier before Load")
		}
	})

	t.Run("load replaces wholesale", func(t *testing.T) {
		view := NewView()
		view.Load(sampleEvent())

		event, ok := view.Event()
		if !ok {
			t.Fatalf("expected event after Load")
		}
		if event.ID != 10 || len(event.Tiers) != 2 {
			t.Fatalf("unexpected event: %+v", event)
		}

		tier, ok := view.TierByID(2)
		if !ok || tier.PriceCents != 2500 {
			t.Fatalf("expected VIP tier at 2500, got %+v ok=%v", tier, ok)
		}
	})

	t.Run("apply replaces tiers and preserves the event header", func(t *testing.T) {
		view := NewView()
		view.Load(sampleEvent())

		view.ApplyBookingResult([]models.EventTier{
			{ID: 1, Code: "GA", DisplayName: "General Admission", PriceCents: 1000, AvailableQuantity: 3},
		})

		event, _ := view.Event()
		if event.ID != 10 || event.Name != "Ultimate Music Night" || event.StartsAt != "2026-09-12T19:00:00Z" {
			t.Fatalf("expected header preserved, got %+v", event)
		}
		if len(event.Tiers) != 1 || event.Tiers[0].AvailableQuantity != 3 {
			t.Fatalf("expected replaced tiers, got %+v", event.Tiers)
		}
		if _, ok := view.TierByID(2); ok {
			t.Fatalf("expected tier 2 gone after reconciliation")
		}
	})

	t.Run("apply before load is a no-op", func(t *testing.T) {
		view := NewView()
		view.ApplyBookingResult(sampleEvent().Tiers)
		if _, ok := view.Event(); ok {
			t.Fatalf("expected view to stay unloaded")
		}
	})

	t.Run("returned copies do not alias internal state", func(t *testing.T) {
		view := NewView()
		view.Load(sampleEvent())

		event, _ := view.Event()
		event.Tiers[0].AvailableQuantity = 0

		tier, _ := view.TierByID(1)
		if tier.AvailableQuantity != 5 {
			t.Fatalf("expected internal state untouched, got %+v", tier)
		}
	})
}
