package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKeysSorted(t *testing.T) {
	m := map[uint8]bool{67: true, 60: true, 64: true}
	assert.Equal(t, []uint8{60, 64, 67}, GetKeysSorted(m))
	assert.ElementsMatch(t, []uint8{60, 64, 67}, GetKeys(m))
}

func TestMin(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(3, Min(3, 7))
	assert.Equal(uint8(2), Min(uint8(9), uint8(2)))
}

func TestFilterFunc(t *testing.T) {
	evens := FilterFunc([]int{1, 2, 3, 4, 5, 6}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, evens)
	assert.Empty(t, FilterFunc([]int{1}, func(int) bool { return false }))
}
