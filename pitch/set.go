package pitch

import (
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

// Set is a set of pitch classes stored as a 12 bit mask. The zero value is
// the empty set.
type Set uint16

const Chromatic Set = 1<<NumClasses - 1

func NewSet(classes ...Class) Set {
	var s Set
	for _, c := range classes {
		s = s.Add(c)
	}
	return s
}

func (s Set) Add(c Class) Set {
	return s | 1<<MustClass(int(c))
}

func (s Set) Remove(c Class) Set {
	return s &^ (1 << MustClass(int(c)))
}

func (s Set) Toggle(c Class) Set {
	return s ^ 1<<MustClass(int(c))
}

func (s Set) Has(c Class) bool {
	return c.Valid() && s&(1<<c) != 0
}

func (s Set) Len() int {
	return bits.OnesCount16(uint16(s))
}

func (s Set) Empty() bool {
	return s == 0
}

// SubsetOf reports whether every member of s is also in other.
func (s Set) SubsetOf(other Set) bool {
	return s&^other == 0
}

// Classes returns the members in ascending order.
func (s Set) Classes() []Class {
	res := make([]Class, 0, s.Len())
	for c := Class(0); c < NumClasses; c++ {
		if s.Has(c) {
			res = append(res, c)
		}
	}
	return res
}

func (s Set) Ints() []int {
	res := make([]int, 0, s.Len())
	for _, c := range s.Classes() {
		res = append(res, int(c))
	}
	return res
}

func (s Set) String() string {
	var parts []string
	for _, c := range s.Classes() {
		parts = append(parts, c.Name())
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// ParseSet parses each token with Parse. Tokens may also be comma separated.
func ParseSet(tokens []string) (Set, error) {
	var s Set
	for _, token := range tokens {
		for _, part := range strings.Split(token, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			c, err := Parse(part)
			if err != nil {
				return 0, errors.Wrapf(err, "could not parse notes %v", tokens)
			}
			s = s.Add(c)
		}
	}
	return s, nil
}
