// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package markers

import (
	"reflect"
	"sync"
	"testing"

	"github.com/tomtom215/placemap/internal/models"
)

func TestLayer_ReplaceDoesNotAccumulate(t *testing.T) {
	t.Parallel()

	layer := NewLayer(DefaultViewport())

	first := layer.Replace(Sync([]models.Place{located("a", 50, 20), located("b", 51, 21)}))
	if len(first.Stale) != 0 {
		t.Errorf("first update stale = %v, want none", first.Stale)
	}

	second := layer.Replace(Sync([]models.Place{located("c", 52, 22)}))
	if !reflect.DeepEqual(second.Stale, []string{"a", "b"}) {
		t.Errorf("stale = %v, want [a b]", second.Stale)
	}
	if layer.Len() != 1 {
		t.Errorf("Len() = %d, want 1", layer.Len())
	}
	if _, ok := layer.Lookup("a"); ok {
		t.Error("replaced marker still resolvable")
	}
	if m, ok := layer.Lookup("c"); !ok || m.Label != "Place c" {
		t.Errorf("Lookup(c) = %+v, %v", m, ok)
	}
}

func TestLayer_ReplaceIsIdempotent(t *testing.T) {
	t.Parallel()

	layer := NewLayer(DefaultViewport())
	res := Sync([]models.Place{located("a", 50, 20), unlocated("b")})

	layer.Replace(res)
	again := layer.Replace(res)

	if !reflect.DeepEqual(again.Stale, []string{"a"}) {
		t.Errorf("stale = %v, want [a]", again.Stale)
	}
	if !reflect.DeepEqual(layer.Active(), res.Markers) {
		t.Errorf("active = %+v, want %+v", layer.Active(), res.Markers)
	}
}

func TestLayer_EmptySyncKeepsDefaultViewport(t *testing.T) {
	t.Parallel()

	custom := models.Viewport{Center: models.Coordinates{Lat: 1, Lng: 2}, Zoom: 3}
	layer := NewLayer(custom)

	layer.Replace(Sync([]models.Place{located("a", 50, 20)}))
	upd := layer.Replace(Sync(nil))

	if upd.Fit != nil || layer.Fit() != nil {
		t.Error("an empty sync should drop the fit")
	}
	if upd.Viewport != custom || layer.DefaultViewport() != custom {
		t.Errorf("viewport = %+v, want %+v", upd.Viewport, custom)
	}
	if upd.Markers == nil || len(upd.Markers) != 0 {
		t.Errorf("markers = %#v, want empty slice", upd.Markers)
	}
}

func TestLayer_ConcurrentReplace(t *testing.T) {
	t.Parallel()

	layer := NewLayer(DefaultViewport())
	res := Sync([]models.Place{located("a", 50, 20), located("b", 51, 21)})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			layer.Replace(res)
			layer.Lookup("a")
		}()
	}
	wg.Wait()

	if layer.Len() != 2 {
		t.Errorf("Len() = %d, want 2", layer.Len())
	}
}
