// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package session

import (
	"sync"

	"github.com/tomtom215/placemap/internal/models"
)

type notice struct {
	sessionID string
	kind      string
	payload   any
}

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	mu      sync.Mutex
	notices []notice
}

func (r *recordingNotifier) Notify(sessionID, kind string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, notice{sessionID, kind, payload})
}

func (r *recordingNotifier) kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.notices))
	for i, n := range r.notices {
		out[i] = n.kind
	}
	return out
}

func (r *recordingNotifier) last() notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return notice{}
	}
	return r.notices[len(r.notices)-1]
}

func rating(v float64) *float64 { return &v }

func located(lat, lng float64) *models.Coordinates {
	return &models.Coordinates{Lat: lat, Lng: lng}
}

// samplePlaces has two cities, one lake with photos and one place without a
// location.
func samplePlaces() []models.Place {
	return []models.Place{
		{ID: "krk", Name: "Kraków", Type: models.PlaceTypeCity, Coordinates: located(50.06, 19.94), Rating: rating(4.7), Photos: []string{}},
		{ID: "oko", Name: "Morskie Oko", Type: models.PlaceTypeLake, Coordinates: located(49.2, 20.07), Rating: rating(4.9), Photos: []string{"a.jpg", "b.jpg", "c.jpg"}},
		{ID: "waw", Name: "Warszawa", Type: models.PlaceTypeCity, Coordinates: located(52.23, 21.01), Photos: []string{"w.jpg"}},
		{ID: "nowhere", Name: "Legenda", Type: models.PlaceTypeOther, Photos: []string{}},
	}
}

func newTestSession(n *recordingNotifier) *Session {
	opts := Options{EmptyMessage: "Nie znaleziono miejsc"}
	if n != nil {
		opts.Notifier = n
	}
	return New("test-session", opts)
}
