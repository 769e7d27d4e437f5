package student

import (
	"github.com/kelsic/dialogia/internal/templates"
)

// Per-category caps on how many fragments a composed model carries.
// Ranking is most-specific-first, so the cap keeps the most targeted
// fragments and drops broad ones.
const (
	maxBeliefs = 3
	maxKoans   = 2
	maxMarkers = 2
)

// Compose builds a student Model from a validated config and a template
// library. For each core category it selects the qualifying fragments,
// ranked by predicate specificity with document order as the tie-break,
// and caps the selection. A category with no qualifying fragment falls
// back to the category default; a category with neither yields a
// CompositionError. The same config against the same library always
// produces the same model.
func Compose(cfg ProfileConfig, lib *templates.Library) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := cfg.props()

	beliefs, err := selectCategory(lib, templates.CategoryBelief, p, maxBeliefs, cfg.Name)
	if err != nil {
		return nil, err
	}
	koans, err := selectCategory(lib, templates.CategoryKoan, p, maxKoans, cfg.Name)
	if err != nil {
		return nil, err
	}
	markers, err := selectCategory(lib, templates.CategoryMarker, p, maxMarkers, cfg.Name)
	if err != nil {
		return nil, err
	}

	return &Model{
		Config:  cfg,
		Beliefs: beliefs,
		Koans:   koans,
		Markers: markers,
	}, nil
}

func selectCategory(lib *templates.Library, cat templates.Category, p templates.Props, limit int, cfgName string) ([]templates.Fragment, error) {
	matched := lib.Match(cat, p)
	if len(matched) == 0 {
		fallback, ok := lib.Fallback(cat)
		if !ok {
			return nil, &CompositionError{Category: cat, Config: cfgName}
		}
		return []templates.Fragment{fallback}, nil
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}
