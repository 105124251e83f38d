// Package session tracks the datasets loaded into a front end, each paired
// with a display color of its own while the palette lasts.
package session

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/san-kum/boltzmannizer/internal/loader"
	"github.com/san-kum/boltzmannizer/internal/reserver"
	"github.com/san-kum/boltzmannizer/internal/thermo"
)

var ErrNoDataset = errors.New("session: no such dataset")

type Dataset struct {
	Key     int
	Path    string
	Dist    *thermo.Distribution
	Color   string
	Enabled bool
}

func (d Dataset) Name() string {
	if name := d.Dist.Filename(); name != "" {
		return name
	}
	return fmt.Sprintf("dataset %d", d.Key)
}

// Session is NOT safe for concurrent use.
type Session struct {
	loader   *loader.Loader
	colors   *reserver.Reserver[string]
	datasets map[int]*Dataset
	nextKey  int
	log      *zap.Logger
}

func New(palette []string, overflow string, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		loader:   loader.New(log),
		colors:   reserver.New(palette, overflow),
		datasets: make(map[int]*Dataset),
		log:      log,
	}
}

// Add loads the file at path. The color reserved for it is returned to the
// palette when loading fails.
func (s *Session) Add(path string) (*Dataset, error) {
	color := s.colors.Allocate()

	d, err := s.loader.Load(path)
	if err != nil {
		if rerr := s.colors.Release(color); rerr != nil {
			s.log.Error("releasing color", zap.String("color", color), zap.Error(rerr))
		}
		return nil, err
	}

	return s.insert(path, d, color), nil
}

// AddDistribution registers an already constructed distribution.
func (s *Session) AddDistribution(d *thermo.Distribution) *Dataset {
	return s.insert("", d, s.colors.Allocate())
}

func (s *Session) insert(path string, d *thermo.Distribution, color string) *Dataset {
	ds := &Dataset{
		Key:     s.nextKey,
		Path:    path,
		Dist:    d,
		Color:   color,
		Enabled: true,
	}
	s.nextKey++
	s.datasets[ds.Key] = ds

	s.log.Debug("dataset added", zap.Int("key", ds.Key), zap.String("name", ds.Name()), zap.String("color", color))
	return ds
}

// Remove drops the dataset and frees its color.
func (s *Session) Remove(key int) error {
	ds, ok := s.datasets[key]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNoDataset, key)
	}
	delete(s.datasets, key)

	s.log.Debug("dataset removed", zap.Int("key", key), zap.String("color", ds.Color))
	return s.colors.Release(ds.Color)
}

// Toggle flips whether the dataset takes part in plots and returns the new
// state.
func (s *Session) Toggle(key int) (bool, error) {
	ds, ok := s.datasets[key]
	if !ok {
		return false, fmt.Errorf("%w: %d", ErrNoDataset, key)
	}
	ds.Enabled = !ds.Enabled
	return ds.Enabled, nil
}

func (s *Session) Get(key int) (*Dataset, bool) {
	ds, ok := s.datasets[key]
	return ds, ok
}

// All returns every dataset in load order.
func (s *Session) All() []*Dataset {
	out := make([]*Dataset, 0, len(s.datasets))
	for _, ds := range s.datasets {
		out = append(out, ds)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Enabled returns the enabled datasets in load order.
func (s *Session) Enabled() []*Dataset {
	all := s.All()
	out := all[:0]
	for _, ds := range all {
		if ds.Enabled {
			out = append(out, ds)
		}
	}
	return out
}

func (s *Session) Len() int { return len(s.datasets) }
