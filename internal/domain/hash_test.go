package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringHash(t *testing.T) {
	tests := []struct {
		in   string
		want int32
	}{
		{"", 0},
		{"a", 97},
		{"ZZ", 2880},
		{"NEW YORK", 2131483247},
		{"PARIS", 75899243},
		{"LONDON", -2043802088},
		{"SAN FRANCISCO", -139784416},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StringHash(tt.in))
		})
	}
}

func TestJavaRandom_NextInt32(t *testing.T) {
	// new Random(0).nextInt() and new Random(42).nextInt().
	assert.Equal(t, int32(-1155484576), newJavaRandom(0).next(32))
	assert.Equal(t, int32(-1170105035), newJavaRandom(42).next(32))
}

func TestJavaRandom_NextIntBounded(t *testing.T) {
	r := newJavaRandom(42)
	got := make([]int32, 5)
	for i := range got {
		got[i] = r.nextInt(10)
	}
	assert.Equal(t, []int32{0, 3, 8, 4, 0}, got)

	r = newJavaRandom(-7)
	got = got[:0]
	for i := 0; i < 5; i++ {
		got = append(got, r.nextInt(20))
	}
	assert.Equal(t, []int32{2, 17, 10, 7, 18}, got)
}

func TestJavaRandom_PowerOfTwoBound(t *testing.T) {
	assert.Equal(t, int32(11), newJavaRandom(123).nextInt(16))
}

func TestJavaRandom_InvalidBound(t *testing.T) {
	assert.Panics(t, func() { newJavaRandom(1).nextInt(0) })
}
