// Package fixtures loads the seed data the entity stores start from.
package fixtures

import (
	_ "embed"
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/starford/tubetrack/internal/models"
	"github.com/starford/tubetrack/internal/progress"
)

//go:embed default.yaml
var defaultData []byte

// Dataset is a complete set of seed records.
type Dataset struct {
	Profile   models.UserProfile   `yaml:"profile"`
	Playlists []models.Playlist    `yaml:"playlists"`
	Videos    []models.Video       `yaml:"videos"`
	Goals     []models.Goal        `yaml:"goals"`
	Summaries []models.Summary     `yaml:"summaries"`
	Weekly    []models.DayActivity `yaml:"weekly"`
}

// Default returns the built-in sample data.
func Default() *Dataset {
	d, err := Parse(defaultData)
	if err != nil {
		panic(fmt.Sprintf("fixtures: embedded default data is invalid: %v", err))
	}
	return d
}

// Load reads a dataset from path. An empty path yields the built-in data.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixtures: read %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fixtures: %s: %w", path, err)
	}
	return d, nil
}

// Parse decodes, normalises and validates a YAML dataset.
func Parse(data []byte) (*Dataset, error) {
	var d Dataset
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("fixtures: parse: %w", err)
	}
	d.normalise()
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("fixtures: validate: %w", err)
	}
	return &d, nil
}

// normalise fills derived and defaulted fields.
func (d *Dataset) normalise() {
	for i := range d.Goals {
		g := &d.Goals[i]
		if g.Status == "" {
			g.Status = models.GoalStatusActive
		}
		g.Progress = progress.Percent(g.Current, g.Target)
	}
	for i := range d.Videos {
		if d.Videos[i].Tags == nil {
			d.Videos[i].Tags = []string{}
		}
	}
	for i := range d.Summaries {
		s := &d.Summaries[i]
		if s.Tags == nil {
			s.Tags = []string{}
		}
		if s.KeyPoints == nil {
			s.KeyPoints = []string{}
		}
	}
}

// Validate checks every record and the references between them.
func (d *Dataset) Validate() error {
	if err := validation.ValidateStruct(d,
		validation.Field(&d.Profile),
		validation.Field(&d.Playlists),
		validation.Field(&d.Videos),
		validation.Field(&d.Goals),
		validation.Field(&d.Summaries),
	); err != nil {
		return err
	}

	playlists := make(map[int64]struct{}, len(d.Playlists))
	for _, p := range d.Playlists {
		if _, dup := playlists[p.ID]; dup {
			return fmt.Errorf("duplicate playlist id %d", p.ID)
		}
		playlists[p.ID] = struct{}{}
	}
	videos := make(map[int64]struct{}, len(d.Videos))
	for _, v := range d.Videos {
		if _, dup := videos[v.ID]; dup {
			return fmt.Errorf("duplicate video id %d", v.ID)
		}
		videos[v.ID] = struct{}{}
		if _, ok := playlists[v.PlaylistID]; !ok {
			return fmt.Errorf("video %d references unknown playlist %d", v.ID, v.PlaylistID)
		}
	}
	if err := uniqueIDs("goal", d.Goals, func(g models.Goal) int64 { return g.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("summary", d.Summaries, func(s models.Summary) int64 { return s.ID }); err != nil {
		return err
	}
	for _, s := range d.Summaries {
		if s.VideoID == 0 {
			continue
		}
		if _, ok := videos[s.VideoID]; !ok {
			return fmt.Errorf("summary %d references unknown video %d", s.ID, s.VideoID)
		}
	}
	return nil
}

func uniqueIDs[T any](kind string, items []T, id func(T) int64) error {
	seen := make(map[int64]struct{}, len(items))
	for _, it := range items {
		k := id(it)
		if _, dup := seen[k]; dup {
			return fmt.Errorf("duplicate %s id %d", kind, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}
