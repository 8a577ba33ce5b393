package repository

import (
	"encoding/json"
	"errors"
	"os"
	"sort"
	"sync"
	"time"

	"addreel/internal/domain"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// adsFile is the on-disk shape of the ad inventory.
type adsFile struct {
	Ads []domain.Ad `json:"ads"`
}

// AdStore is the flat-file ad inventory behind the admin API. Reads that
// fail (missing file, bad JSON) yield an empty catalog; writes rewrite
// the whole file under the store mutex.
type AdStore struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

func NewAdStore(path string) *AdStore {
	return &AdStore{path: path, now: time.Now}
}

// List returns every ad in the inventory.
func (s *AdStore) List() []domain.Ad {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read().Ads
}

// ActiveAds returns active ads sorted by display order. This is the feed
// the mobile client consumes.
func (s *AdStore) ActiveAds() []domain.Ad {
	s.mu.Lock()
	defer s.mu.Unlock()

	var active []domain.Ad
	for _, ad := range s.read().Ads {
		if ad.IsActive {
			active = append(active, ad)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Order < active[j].Order })
	return active
}

// Get returns the ad with the given ID.
func (s *AdStore) Get(id string) (domain.Ad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ad := range s.read().Ads {
		if ad.ID == id {
			return ad, nil
		}
	}
	return domain.Ad{}, ErrNotFound
}

// Create assigns an ID, creation time and the next display order, then
// appends the ad to the inventory.
func (s *AdStore) Create(ad domain.Ad) (domain.Ad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.read()
	ad.ID = uuid.NewString()
	ad.CreatedAt = s.now()
	ad.Order = len(data.Ads) + 1

	data.Ads = append(data.Ads, ad)
	if err := s.write(data); err != nil {
		return domain.Ad{}, err
	}
	return ad, nil
}

// Update replaces the stored ad with the same ID.
func (s *AdStore) Update(ad domain.Ad) (domain.Ad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.read()
	for i := range data.Ads {
		if data.Ads[i].ID == ad.ID {
			ad.CreatedAt = data.Ads[i].CreatedAt
			data.Ads[i] = ad
			if err := s.write(data); err != nil {
				return domain.Ad{}, err
			}
			return ad, nil
		}
	}
	return domain.Ad{}, ErrNotFound
}

// Delete removes the ad with the given ID. Deleting an absent ID is not
// an error.
func (s *AdStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.read()
	kept := data.Ads[:0]
	for _, ad := range data.Ads {
		if ad.ID != id {
			kept = append(kept, ad)
		}
	}
	data.Ads = kept
	return s.write(data)
}

func (s *AdStore) read() adsFile {
	var data adsFile
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return data
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return adsFile{}
	}
	return data
}

func (s *AdStore) write(data adsFile) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}
