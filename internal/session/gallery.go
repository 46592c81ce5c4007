// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package session

import "github.com/tomtom215/placemap/internal/gallery"

// OpenGallery opens the photo carousel for a place. A place without photos
// leaves the gallery as it was.
func (s *Session) OpenGallery(placeID string) (gallery.View, error) {
	s.mu.Lock()
	p, err := s.placeLocked(placeID)
	if err != nil {
		s.mu.Unlock()
		return gallery.View{}, err
	}
	opened := s.gallery.Open(p)
	change := s.galleryChangeLocked(opened)
	if opened {
		s.notifyLocked(notification{KindGallery, *change.Gallery})
	}
	s.mu.Unlock()
	return *change.Gallery, nil
}

// NextPhoto advances the cursor, stopping at the last photo.
func (s *Session) NextPhoto() gallery.View {
	return s.galleryStep(s.gallery.Next)
}

// PreviousPhoto moves the cursor back, stopping at the first photo.
func (s *Session) PreviousPhoto() gallery.View {
	return s.galleryStep(s.gallery.Previous)
}

// CloseGallery closes the carousel.
func (s *Session) CloseGallery() gallery.View {
	return s.galleryStep(s.gallery.Close)
}

// GalleryKey applies a keyboard key (Escape, ArrowLeft, ArrowRight).
func (s *Session) GalleryKey(key string) gallery.View {
	return s.galleryStep(func() bool { return s.gallery.HandleKey(key) })
}

// Gallery returns the current gallery view.
func (s *Session) Gallery() gallery.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gallery.View()
}

func (s *Session) galleryStep(step func() bool) gallery.View {
	s.mu.Lock()
	moved := step()
	change := s.galleryChangeLocked(moved)
	if moved {
		s.notifyLocked(notification{KindGallery, *change.Gallery})
	}
	s.mu.Unlock()
	return *change.Gallery
}

// galleryChangeLocked must be called with s.mu held.
func (s *Session) galleryChangeLocked(changed bool) Change {
	view := s.gallery.View()
	if changed {
		s.touchLocked(OpGallery)
	}
	return Change{Operation: OpGallery, Changed: changed, Gallery: &view}
}
