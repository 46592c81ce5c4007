// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package session

import (
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/placemap/internal/gallery"
	"github.com/tomtom215/placemap/internal/markers"
	"github.com/tomtom215/placemap/internal/models"
	"github.com/tomtom215/placemap/internal/presenter"
)

func cardIDs(cards []presenter.Card) []string {
	out := make([]string, len(cards))
	for i := range cards {
		out[i] = cards[i].ID
	}
	return out
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	s := newTestSession(nil)
	snap := s.Snapshot()

	if snap.ID != "test-session" || snap.Status != StatusIdle {
		t.Errorf("id/status = %q/%q", snap.ID, snap.Status)
	}
	if snap.Tab != models.TabMap || snap.Filter != models.FilterAll || snap.Sort != models.SortByName {
		t.Errorf("view params = %s/%s/%s", snap.Tab, snap.Filter, snap.Sort)
	}
	if snap.Empty {
		t.Error("a fresh session is not an empty result")
	}
	if snap.Map.Fit != nil || snap.Map.Viewport != markers.DefaultViewport() {
		t.Errorf("map = %+v, want default viewport and no fit", snap.Map)
	}
	if snap.Gallery.Open {
		t.Error("gallery should start closed")
	}
}

func TestReplaceCollection(t *testing.T) {
	t.Parallel()

	n := &recordingNotifier{}
	s := newTestSession(n)
	change := s.ReplaceCollection(samplePlaces())

	if change.Operation != OpReplaceCollection || change.List == nil || change.Markers == nil {
		t.Fatalf("change = %+v", change)
	}
	if len(change.Markers.Markers) != 3 {
		t.Errorf("markers = %d, want 3 (one place has no location)", len(change.Markers.Markers))
	}
	if change.Markers.Fit == nil {
		t.Error("expected a viewport fit")
	}

	snap := s.Snapshot()
	if snap.Status != StatusReady || snap.Counts.Total != 4 || snap.Counts.Shown != 4 {
		t.Errorf("snapshot = status %s counts %+v", snap.Status, snap.Counts)
	}
	if len(snap.Catalog) != 3 {
		t.Errorf("catalog = %+v, want city, lake, other", snap.Catalog)
	}
	if got := n.kinds(); !reflect.DeepEqual(got, []string{KindSession}) {
		t.Errorf("notifications = %v", got)
	}
}

func TestReplaceCollection_ResetsFilterKeepsTabAndSort(t *testing.T) {
	t.Parallel()

	s := newTestSession(nil)
	s.ReplaceCollection(samplePlaces())
	s.SetTab(models.TabList)
	s.SetSort(models.SortByRating)
	s.SetFilter(models.Filter(models.PlaceTypeCity))
	if _, err := s.OpenGallery("oko"); err != nil {
		t.Fatalf("OpenGallery() error = %v", err)
	}

	change := s.ReplaceCollection(samplePlaces()[:2])

	snap := s.Snapshot()
	if snap.Filter != models.FilterAll {
		t.Errorf("filter = %q, want all", snap.Filter)
	}
	if snap.Tab != models.TabList || snap.Sort != models.SortByRating {
		t.Errorf("tab/sort = %s/%s, want list/rating kept", snap.Tab, snap.Sort)
	}
	if snap.Gallery.Open {
		t.Error("replacing the collection must close the gallery")
	}

	// Every previously drawn marker is reported stale.
	if got := change.Markers.Stale; !reflect.DeepEqual(got, []string{"krk", "oko", "waw"}) {
		t.Errorf("stale = %v", got)
	}
	if len(snap.Map.Markers) != 2 {
		t.Errorf("markers after replace = %d, want 2", len(snap.Map.Markers))
	}
}

func TestReplaceCollection_CopiesInput(t *testing.T) {
	t.Parallel()

	places := samplePlaces()
	s := newTestSession(nil)
	s.ReplaceCollection(places)

	places[0].Name = "changed"
	if p, _ := s.Place("krk"); p.Name != "Kraków" {
		t.Errorf("session shares the caller's slice: name = %q", p.Name)
	}
}

func TestSetTab(t *testing.T) {
	t.Parallel()

	n := &recordingNotifier{}
	s := newTestSession(n)
	s.ReplaceCollection(samplePlaces())

	change := s.SetTab(models.TabList)
	if change.List == nil || change.Markers != nil || !change.Changed {
		t.Errorf("list tab change = %+v", change)
	}

	change = s.SetTab(models.TabMap)
	if change.Markers == nil || change.List != nil || !change.Changed {
		t.Errorf("map tab change = %+v", change)
	}
	if len(change.Markers.Stale) != 3 || len(change.Markers.Markers) != 3 {
		t.Errorf("re-sync should replace the same three markers: %+v", change.Markers)
	}

	change = s.SetTab(models.TabMap)
	if change.Changed {
		t.Error("selecting the active tab is not a change")
	}

	want := []string{KindSession, KindList, KindMarkers, KindMarkers}
	if got := n.kinds(); !reflect.DeepEqual(got, want) {
		t.Errorf("notifications = %v, want %v", got, want)
	}
}

func TestSetFilter(t *testing.T) {
	t.Parallel()

	s := newTestSession(nil)
	s.ReplaceCollection(samplePlaces())
	catalog := s.Catalog()

	change := s.SetFilter(models.Filter(models.PlaceTypeCity))
	if got := cardIDs(change.List.Cards); !reflect.DeepEqual(got, []string{"krk", "waw"}) {
		t.Errorf("city cards = %v", got)
	}
	if change.List.Grouped {
		t.Error("a type filter must not group")
	}

	// Markers follow the full collection, not the filter.
	if got := len(s.Map().Markers); got != 3 {
		t.Errorf("markers = %d, want 3", got)
	}

	change = s.SetFilter(models.Filter(models.PlaceTypePark))
	if !change.List.NoMatches || change.List.Message != presenter.DefaultNoMatchesMessage {
		t.Errorf("park filter = no_matches %v message %q", change.List.NoMatches, change.List.Message)
	}
	if snap := s.Snapshot(); snap.Counts.Shown != 0 || snap.Counts.Total != 4 {
		t.Errorf("counts = %+v", snap.Counts)
	}
	// The catalog describes the collection, so a filter leaves it alone.
	if got := s.Catalog(); !reflect.DeepEqual(got, catalog) {
		t.Errorf("catalog after filter = %+v, want %+v", got, catalog)
	}

	change = s.SetFilter("")
	if change.List.Filter != models.FilterAll || !change.List.Grouped {
		t.Errorf("empty filter should mean all: %+v", change.List)
	}
}

// stallingNotifier holds its first call until release is closed.
type stallingNotifier struct {
	recordingNotifier
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (n *stallingNotifier) Notify(sessionID, kind string, payload any) {
	n.once.Do(func() {
		close(n.entered)
		<-n.release
	})
	n.recordingNotifier.Notify(sessionID, kind, payload)
}

func TestNotificationsFollowTransitionOrder(t *testing.T) {
	t.Parallel()

	n := &stallingNotifier{entered: make(chan struct{}), release: make(chan struct{})}
	s := New("ordered", Options{Notifier: n})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.SetFilter(models.Filter(models.PlaceTypePark))
	}()
	<-n.entered

	// The second transition starts while the first is still pushing.
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.SetFilter(models.Filter(models.PlaceTypeSea))
	}()
	time.Sleep(20 * time.Millisecond)
	close(n.release)
	wg.Wait()

	final := s.List().Filter
	if final != models.Filter(models.PlaceTypeSea) {
		t.Fatalf("final filter = %q, want sea", final)
	}
	last, ok := n.last().payload.(presenter.ListView)
	if !ok || last.Filter != final {
		t.Errorf("last pushed filter = %q, session filter = %q", last.Filter, final)
	}
}

func TestNotificationsMatchFinalState(t *testing.T) {
	t.Parallel()

	n := &recordingNotifier{}
	s := newTestSession(n)
	s.ReplaceCollection(samplePlaces())

	filters := []models.Filter{
		models.Filter(models.PlaceTypeCity),
		models.Filter(models.PlaceTypeLake),
		models.FilterAll,
		models.Filter(models.PlaceTypeOther),
	}
	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(f models.Filter) {
			defer wg.Done()
			s.SetFilter(f)
		}(filters[i%len(filters)])
	}
	wg.Wait()

	last, ok := n.last().payload.(presenter.ListView)
	if !ok || last.Filter != s.Snapshot().Filter {
		t.Errorf("last pushed filter = %q, session filter = %q", last.Filter, s.Snapshot().Filter)
	}
}

func TestSetSort(t *testing.T) {
	t.Parallel()

	s := newTestSession(nil)
	s.ReplaceCollection(samplePlaces())
	catalog := s.Catalog()

	change := s.SetSort(models.SortByRating)
	// Unrated places sort last and keep collection order.
	if got := cardIDs(change.List.Cards); !reflect.DeepEqual(got, []string{"oko", "krk", "waw", "nowhere"}) {
		t.Errorf("rating order = %v", got)
	}
	if s.List().Sort != models.SortByRating {
		t.Error("sort not stored")
	}
	if got := s.Catalog(); !reflect.DeepEqual(got, catalog) {
		t.Errorf("catalog after sort = %+v, want %+v", got, catalog)
	}
}

func TestGallery(t *testing.T) {
	t.Parallel()

	n := &recordingNotifier{}
	s := newTestSession(n)
	s.ReplaceCollection(samplePlaces())

	view, err := s.OpenGallery("oko")
	if err != nil {
		t.Fatalf("OpenGallery() error = %v", err)
	}
	if !view.Open || view.Counter != "1 / 3" || view.CanPrevious || !view.CanNext {
		t.Errorf("opened view = %+v", view)
	}

	s.NextPhoto()
	view = s.NextPhoto()
	if view.Cursor != 2 || view.CanNext {
		t.Errorf("at last photo: %+v", view)
	}
	if view = s.NextPhoto(); view.Cursor != 2 {
		t.Errorf("Next past the end moved to %d", view.Cursor)
	}

	if view = s.GalleryKey(gallery.KeyArrowLeft); view.Cursor != 1 {
		t.Errorf("ArrowLeft cursor = %d, want 1", view.Cursor)
	}
	if view = s.PreviousPhoto(); view.Cursor != 0 {
		t.Errorf("Previous cursor = %d, want 0", view.Cursor)
	}
	if view = s.GalleryKey(gallery.KeyEscape); view.Open {
		t.Error("Escape should close the gallery")
	}
	if s.Gallery().Open {
		t.Error("Gallery() should report closed")
	}

	// open, next, next, left, previous, escape: six moves; the saturated
	// Next sends nothing.
	moves := 0
	for _, k := range n.kinds() {
		if k == KindGallery {
			moves++
		}
	}
	if moves != 6 {
		t.Errorf("gallery notifications = %d, want 6", moves)
	}
}

func TestGallery_NoPhotosAndUnknownPlace(t *testing.T) {
	t.Parallel()

	s := newTestSession(nil)
	s.ReplaceCollection(samplePlaces())

	view, err := s.OpenGallery("krk")
	if err != nil || view.Open {
		t.Errorf("place without photos: view %+v err %v, want closed and nil", view, err)
	}

	if _, err := s.OpenGallery("missing"); !errors.Is(err, ErrPlaceNotFound) {
		t.Errorf("unknown place error = %v, want ErrPlaceNotFound", err)
	}
	if view := s.CloseGallery(); view.Open {
		t.Error("closing a closed gallery should stay closed")
	}
}

func TestInfoWindowAndLink(t *testing.T) {
	t.Parallel()

	s := newTestSession(nil)
	s.ReplaceCollection(samplePlaces())

	info, err := s.InfoWindow("oko")
	if err != nil {
		t.Fatalf("InfoWindow() error = %v", err)
	}
	if info.Name != "Morskie Oko" || len(info.Thumbnails) != presenter.InfoWindowThumbnails || info.MorePhotos != 0 {
		t.Errorf("info window = %+v", info)
	}

	link, ok, err := s.Link("krk")
	if err != nil || !ok || link == "" {
		t.Errorf("Link(krk) = %q %v %v", link, ok, err)
	}

	if _, err := s.InfoWindow("missing"); !errors.Is(err, ErrPlaceNotFound) {
		t.Errorf("InfoWindow(missing) error = %v", err)
	}
	// "nowhere" is in the collection but not on the map.
	if _, err := s.InfoWindow("nowhere"); !errors.Is(err, ErrNoMarker) {
		t.Errorf("InfoWindow(nowhere) error = %v, want ErrNoMarker", err)
	}
	if _, _, err := s.Link("missing"); !errors.Is(err, ErrPlaceNotFound) {
		t.Errorf("Link(missing) error = %v", err)
	}
}

func TestSession_ConcurrentTransitions(t *testing.T) {
	t.Parallel()

	s := newTestSession(&recordingNotifier{})
	s.ReplaceCollection(samplePlaces())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				switch (i + j) % 5 {
				case 0:
					s.SetFilter(models.Filter(models.PlaceTypeCity))
				case 1:
					s.SetSort(models.SortByRating)
				case 2:
					s.SetTab(models.TabMap)
				case 3:
					_, _ = s.OpenGallery("oko")
					s.NextPhoto()
				default:
					_ = s.Snapshot()
				}
			}
		}(i)
	}
	wg.Wait()

	snap := s.Snapshot()
	if snap.Counts.Total != 4 || len(snap.Map.Markers) != 3 {
		t.Errorf("state corrupted: %+v", snap.Counts)
	}
}
