package scale

import (
	"strings"

	"github.com/jsphweid/scalefinder/pitch"
	"github.com/jsphweid/scalefinder/util"
)

// Catalog holds every major and natural minor scale, root ascending with the
// major scale before the minor one for each root. Treat it as read only.
type Catalog []Scale

const CatalogSize = pitch.NumClasses * 2

func Build() Catalog {
	res := make(Catalog, 0, CatalogSize)
	for root := pitch.Class(0); root < pitch.NumClasses; root++ {
		res = append(res, newScale(Major, root))
		res = append(res, newScale(Minor, root))
	}
	return res
}

func (c Catalog) OfKind(k Kind) []Scale {
	return util.FilterFunc([]Scale(c), func(s Scale) bool { return s.Kind == k })
}

// Lookup resolves a display name such as "F#" or "Am". The root letter is
// case insensitive, the trailing "m" is not.
func (c Catalog) Lookup(name string) (Scale, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Scale{}, false
	}
	name = strings.ToUpper(name[:1]) + name[1:]
	for _, s := range c {
		if s.Name == name {
			return s, true
		}
	}
	return Scale{}, false
}
