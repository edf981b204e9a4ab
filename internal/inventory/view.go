// Package inventory holds the frontend's view of one event's tier inventory.
//
// The view is populated once from the Event Catalog Service and after that is
// only ever refreshed by applying a Booking Service response. It never
// decrements a quantity on its own and never mutates a tier in place.
package inventory

import (
	"sync"

	"github.com/anishghimire862/ticket-booking-frontend/internal/models"
)

type View struct {
	mu    sync.RWMutex
	event *models.EventDetail
}

func NewView() *View {
	return &View{}
}

// Load replaces the held event wholesale. Called once after the initial
// catalog fetch succeeds.
func (v *View) Load(detail models.EventDetail) {
	v.mu.Lock()
	defer v.mu.Unlock()

	copied := detail
	copied.Tiers = append([]models.EventTier(nil), detail.Tiers...)
	v.event = &copied
}

// ApplyBookingResult replaces only the tier list with the authoritative one
// from a booking response, preserving the event's id, name and start time.
// Callers that hold a tier selection must re-validate it afterwards.
func (v *View) ApplyBookingResult(tiers []models.EventTier) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.event == nil {
		return
	}
	v.event.Tiers = append([]models.EventTier(nil), tiers...)
}

// Event returns a copy of the held event, or false if nothing is loaded yet.
func (v *View) Event() (models.EventDetail, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.event == nil {
		return models.EventDetail{}, false
	}
	copied := *v.event
	copied.Tiers = append([]models.EventTier(nil), v.event.Tiers...)
	return copied, true
}

// TierByID re-queries the current tier list by id. Selections hold only the
// id and resolve the tier through here on every use, so a reconciled tier
// list can never leave a caller acting on a stale tier object.
func (v *View) TierByID(id int64) (models.EventTier, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.event == nil {
		return models.EventTier{}, false
	}
	for _, tier := range v.event.Tiers {
		if tier.ID == id {
			return tier, true
		}
	}
	return models.EventTier{}, false
}
