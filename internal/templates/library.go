package templates

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/mod/semver"
)

// SupportedMajor is the library format major version this build reads.
// Libraries with a different major are rejected at load time.
const SupportedMajor = "v1"

// Library is the read-only fragment collection, loaded once at process
// start and never mutated afterwards. Fragment order within a category is
// the document order of the source, which composition uses as the stable
// tie-break.
type Library struct {
	version    string
	categories map[Category][]Fragment
}

// libraryFile is the on-disk JSON shape.
type libraryFile struct {
	Version    string                  `json:"version"`
	Categories map[Category][]Fragment `json:"categories"`
}

// Load reads a library from a JSON file.
func Load(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open template library: %w", err)
	}
	defer f.Close()

	lib, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse template library %s: %w", path, err)
	}
	return lib, nil
}

// Parse reads a library from JSON. Unknown fields are rejected so a
// misspelled predicate key fails loudly instead of silently matching
// everything.
func Parse(r io.Reader) (*Library, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var file libraryFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return build(file)
}

func build(file libraryFile) (*Library, error) {
	v := "v" + file.Version
	if !semver.IsValid(v) {
		return nil, fmt.Errorf("invalid library version %q", file.Version)
	}
	if semver.Major(v) != SupportedMajor {
		return nil, fmt.Errorf("unsupported library version %s (want %s.x)", file.Version, SupportedMajor)
	}

	lib := &Library{
		version:    file.Version,
		categories: make(map[Category][]Fragment, len(file.Categories)),
	}

	for cat, frags := range file.Categories {
		if len(frags) == 0 {
			return nil, fmt.Errorf("category %q is empty", cat)
		}
		seen := make(map[string]bool, len(frags))
		for _, fr := range frags {
			if fr.ID == "" {
				return nil, fmt.Errorf("category %q has a fragment without an id", cat)
			}
			if seen[fr.ID] {
				return nil, fmt.Errorf("category %q has duplicate fragment id %q", cat, fr.ID)
			}
			seen[fr.ID] = true
			if fr.Text == "" {
				return nil, fmt.Errorf("fragment %s/%s has no text", cat, fr.ID)
			}
		}
		lib.categories[cat] = frags
	}

	for _, cat := range CoreCategories() {
		if _, ok := lib.categories[cat]; !ok {
			return nil, fmt.Errorf("missing core category %q", cat)
		}
	}

	return lib, nil
}

// Version returns the library's declared version string.
func (l *Library) Version() string {
	return l.version
}

// Categories returns the category names in sorted order.
func (l *Library) Categories() []Category {
	cats := make([]Category, 0, len(l.categories))
	for c := range l.categories {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}

// Fragments returns the fragments of a category in document order.
func (l *Library) Fragments(cat Category) []Fragment {
	return l.categories[cat]
}

// Match returns the fragments of cat whose predicates hold for p, ordered
// most-specific-first with ties broken by document order. Fallback
// fragments are excluded; they only apply when nothing else matches.
func (l *Library) Match(cat Category, p Props) []Fragment {
	frags := l.categories[cat]
	type ranked struct {
		frag  Fragment
		spec  int
		index int
	}

	var matched []ranked
	for i, fr := range frags {
		if fr.Fallback {
			continue
		}
		if fr.When.Matches(p) {
			matched = append(matched, ranked{frag: fr, spec: fr.When.Specificity(), index: i})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].spec != matched[j].spec {
			return matched[i].spec > matched[j].spec
		}
		return matched[i].index < matched[j].index
	})

	out := make([]Fragment, len(matched))
	for i, m := range matched {
		out[i] = m.frag
	}
	return out
}

// Fallback returns the category's fallback fragment. The second return is
// false when the category declares none.
func (l *Library) Fallback(cat Category) (Fragment, bool) {
	for _, fr := range l.categories[cat] {
		if fr.Fallback {
			return fr, true
		}
	}
	return Fragment{}, false
}
