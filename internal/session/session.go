// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package session

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/placemap/internal/analysis"
	"github.com/tomtom215/placemap/internal/gallery"
	"github.com/tomtom215/placemap/internal/logging"
	"github.com/tomtom215/placemap/internal/markers"
	"github.com/tomtom215/placemap/internal/metrics"
	"github.com/tomtom215/placemap/internal/models"
	"github.com/tomtom215/placemap/internal/presenter"
	"github.com/tomtom215/placemap/internal/projection"
)

// Status is the analysis lifecycle state of a session.
type Status string

// Session statuses.
const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// Notification kinds pushed to the Notifier. They double as WebSocket
// message types.
const (
	KindSession  = "session"
	KindList     = "list"
	KindMarkers  = "markers"
	KindGallery  = "gallery"
	KindAnalysis = "analysis"
)

// Operation names used in Change, logs and the session_transitions metric.
const (
	OpReplaceCollection = "replace_collection"
	OpSetTab            = "set_tab"
	OpSetFilter         = "set_filter"
	OpSetSort           = "set_sort"
	OpGallery           = "gallery"
	OpAnalyze           = "analyze"
)

// Notifier receives recomputed views. It is called with the session lock
// held: implementations must not block and must not call back into the
// session.
type Notifier interface {
	Notify(sessionID, kind string, payload any)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, string, any) {}

// Change reports what a transition recomputed. Only the recomputed views
// are set.
type Change struct {
	Operation string              `json:"operation"`
	Changed   bool                `json:"changed"`
	List      *presenter.ListView `json:"list,omitempty"`
	Markers   *markers.Update     `json:"markers,omitempty"`
	Gallery   *gallery.View       `json:"gallery,omitempty"`
}

// Options are the collaborators shared by every session of a store.
type Options struct {
	Engine       *projection.Engine
	Presenter    *presenter.Presenter
	Viewport     models.Viewport
	Messages     analysis.Messages
	EmptyMessage string
	Notifier     Notifier
}

func (o Options) withDefaults() Options {
	if o.Engine == nil {
		o.Engine = projection.NewEngine(projection.DefaultLocale)
	}
	if o.Presenter == nil {
		o.Presenter = presenter.New(nil, "")
	}
	if o.Viewport == (models.Viewport{}) {
		o.Viewport = markers.DefaultViewport()
	}
	if o.Messages == (analysis.Messages{}) {
		o.Messages = analysis.DefaultMessages()
	}
	if o.Notifier == nil {
		o.Notifier = nopNotifier{}
	}
	return o
}

// notification is one Notify call, sent while the session lock is held.
type notification struct {
	kind    string
	payload any
}

// Session is the owned state of one presentation. It is safe for
// concurrent use.
type Session struct {
	mu sync.Mutex

	id        string
	createdAt time.Time
	opts      Options
	logger    zerolog.Logger
	events    *logging.AnalysisLogger

	places  []models.Place
	byID    map[string]int
	catalog []projection.CatalogEntry

	tab    models.Tab
	filter models.Filter
	sort   models.SortKey

	gallery *gallery.Controller
	layer   *markers.Layer

	status   Status
	errMsg   string
	videoURL string
	inFlight bool
	updated  time.Time
}

// New creates an empty session on the map tab, showing all places sorted by
// name.
func New(id string, opts Options) *Session {
	opts = opts.withDefaults()
	now := time.Now()

	logger := logging.WithComponent("session").With().Str("session_id", id).Logger()

	return &Session{
		id:        id,
		createdAt: now,
		opts:      opts,
		logger:    logger,
		events:    logging.NewAnalysisLoggerWithLogger(logger),
		places:    []models.Place{},
		byID:      map[string]int{},
		catalog:   []projection.CatalogEntry{},
		tab:       models.TabMap,
		filter:    models.FilterAll,
		sort:      models.SortByName,
		gallery:   gallery.New(),
		layer:     markers.NewLayer(opts.Viewport),
		status:    StatusIdle,
		updated:   now,
	}
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// ReplaceCollection installs a new place collection. The filter resets to
// "all", any open gallery closes, and the catalog, list and markers are
// rebuilt. Tab and sort are kept.
func (s *Session) ReplaceCollection(places []models.Place) Change {
	s.mu.Lock()
	change := s.replaceLocked(places)
	s.status = StatusReady
	s.errMsg = ""
	s.notifyLocked(notification{KindSession, s.snapshotLocked()})
	s.mu.Unlock()
	return change
}

// replaceLocked must be called with s.mu held.
func (s *Session) replaceLocked(places []models.Place) Change {
	s.places = slices.Clone(places)
	if s.places == nil {
		s.places = []models.Place{}
	}
	s.byID = make(map[string]int, len(s.places))
	for i := range s.places {
		s.byID[s.places[i].ID] = i
	}
	s.catalog = projection.FilterCatalog(s.places)
	s.filter = models.FilterAll
	s.gallery.Close()

	list := s.listLocked()
	update := s.syncLocked()
	view := s.gallery.View()
	s.touchLocked(OpReplaceCollection)

	s.logger.Debug().
		Int("places", len(s.places)).
		Int("markers", len(update.Markers)).
		Msg("Collection replaced")

	return Change{
		Operation: OpReplaceCollection,
		Changed:   true,
		List:      &list,
		Markers:   &update,
		Gallery:   &view,
	}
}

// SetTab switches the active tab. The map tab re-syncs markers; the list
// tab re-projects the list.
func (s *Session) SetTab(tab models.Tab) Change {
	s.mu.Lock()
	change := Change{Operation: OpSetTab, Changed: s.tab != tab}
	s.tab = tab

	var n notification
	if tab == models.TabMap {
		update := s.syncLocked()
		change.Markers = &update
		n = notification{KindMarkers, update}
	} else {
		list := s.listLocked()
		change.List = &list
		n = notification{KindList, list}
	}
	s.touchLocked(OpSetTab)
	s.notifyLocked(n)
	s.mu.Unlock()
	return change
}

// SetFilter restricts the list to one type, or lifts the restriction with
// models.FilterAll. An empty filter means all.
func (s *Session) SetFilter(filter models.Filter) Change {
	if filter == "" {
		filter = models.FilterAll
	}

	s.mu.Lock()
	change := Change{Operation: OpSetFilter, Changed: s.filter != filter}
	s.filter = filter
	list := s.listLocked()
	change.List = &list
	s.touchLocked(OpSetFilter)
	s.notifyLocked(notification{KindList, list})
	s.mu.Unlock()
	return change
}

// SetSort changes the list ordering.
func (s *Session) SetSort(key models.SortKey) Change {
	s.mu.Lock()
	change := Change{Operation: OpSetSort, Changed: s.sort != key}
	s.sort = key
	list := s.listLocked()
	change.List = &list
	s.touchLocked(OpSetSort)
	s.notifyLocked(notification{KindList, list})
	s.mu.Unlock()
	return change
}

// List returns the current list view.
func (s *Session) List() presenter.ListView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked()
}

// Map returns the markers currently on the map.
func (s *Session) Map() MapView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mapLocked()
}

// Catalog returns the filter choices for the current collection.
func (s *Session) Catalog() []projection.CatalogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.catalog)
}

// Place returns a copy of the place with id.
func (s *Session) Place(id string) (models.Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.placeLocked(id)
	if err != nil {
		return models.Place{}, err
	}
	return *p, nil
}

// InfoWindow returns the popup for a clicked marker. The click is resolved
// through the marker layer, so a place without a location has no popup.
func (s *Session) InfoWindow(placeID string) (presenter.InfoWindow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.placeLocked(placeID)
	if err != nil {
		return presenter.InfoWindow{}, err
	}
	m, ok := s.layer.Lookup(placeID)
	if !ok {
		return presenter.InfoWindow{}, fmt.Errorf("%w: %q", ErrNoMarker, placeID)
	}
	p, err = s.placeLocked(m.PlaceID)
	if err != nil {
		return presenter.InfoWindow{}, err
	}
	return s.opts.Presenter.InfoWindow(p), nil
}

// Link returns the external map link for a place. ok is false when the
// place has nothing to link by.
func (s *Session) Link(id string) (link string, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.placeLocked(id)
	if err != nil {
		return "", false, err
	}
	link, ok = s.opts.Presenter.Link(p)
	return link, ok, nil
}

// placeLocked must be called with s.mu held. The returned pointer aliases
// the collection and must not escape the lock.
func (s *Session) placeLocked(id string) (*models.Place, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPlaceNotFound, id)
	}
	return &s.places[i], nil
}

// listLocked must be called with s.mu held.
func (s *Session) listLocked() presenter.ListView {
	vm := s.opts.Engine.Project(s.places, s.filter, s.sort)
	return s.opts.Presenter.List(vm)
}

// syncLocked must be called with s.mu held. Markers always reflect the full
// collection regardless of the list filter.
func (s *Session) syncLocked() markers.Update {
	res := markers.Sync(s.places)
	metrics.RecordMarkerSync(len(res.Markers), res.Skipped)
	return s.layer.Replace(res)
}

func (s *Session) mapLocked() MapView {
	return MapView{
		Markers:  s.layer.Active(),
		Fit:      s.layer.Fit(),
		Viewport: s.layer.DefaultViewport(),
	}
}

// touchLocked must be called with s.mu held.
func (s *Session) touchLocked(op string) {
	s.updated = time.Now()
	metrics.RecordSessionTransition(op)
}

// notifyLocked must be called with s.mu held, so that pushes leave in the
// order the transitions happened.
func (s *Session) notifyLocked(ns ...notification) {
	for _, n := range ns {
		s.opts.Notifier.Notify(s.id, n.kind, n.payload)
	}
}
