package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	return maps.Keys(m)
}

func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func FilterFunc[A any](items []A, keep func(A) bool) []A {
	res := make([]A, 0, len(items))
	for _, v := range items {
		if keep(v) {
			res = append(res, v)
		}
	}
	return res
}
