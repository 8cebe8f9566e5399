package engine

import (
	"github.com/jsphweid/scalefinder/pitch"
	"github.com/jsphweid/scalefinder/scale"
)

type Matches struct {
	Majors []scale.Scale
	Minors []scale.Scale
}

// Match returns the catalog scales whose pitch classes include every member of
// selection, split by kind and kept in catalog order. An empty selection
// applies no filter.
func Match(selection pitch.Set, catalog scale.Catalog) Matches {
	var m Matches
	if selection.Empty() {
		m.Majors = catalog.OfKind(scale.Major)
		m.Minors = catalog.OfKind(scale.Minor)
		return m
	}

	for _, s := range catalog {
		if !s.Contains(selection) {
			continue
		}
		switch s.Kind {
		case scale.Major:
			m.Majors = append(m.Majors, s)
		case scale.Minor:
			m.Minors = append(m.Minors, s)
		}
	}
	return m
}

func (m Matches) Len() int {
	return len(m.Majors) + len(m.Minors)
}

func (m Matches) All() []scale.Scale {
	res := make([]scale.Scale, 0, m.Len())
	res = append(res, m.Majors...)
	return append(res, m.Minors...)
}
