package mrst

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 8, WordWidth[uint8]())
	assert.Equal(t, 16, WordWidth[uint16]())
	assert.Equal(t, 32, WordWidth[uint32]())
	assert.Equal(t, 64, WordWidth[uint64]())
}

func TestWindow_Hash(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		L, R   uint8
		Key    uint64
		ExpIdx uint64
	}{
		{5, 3, 41, 0b101}, // 101001
		{5, 3, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 2, 0},
		{63, 63, 1 << 63, 1},
		{63, 0, math.MaxUint64, math.MaxUint64},
		{7, 4, 0xABCD, 0xC},
		{31, 0, 0xFFFF_0000_1234_5678, 0x1234_5678},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("[%d,%d](%s)", tcase.L, tcase.R, uint64ToBitString(tcase.Key, 16))
		)

		t.Run(name, func(t *testing.T) {
			w := Window[uint64]{L: tcase.L, R: tcase.R}

			assert.Equal(t, tcase.ExpIdx, w.Hash(tcase.Key))

			if w.Width() < 64 {
				assert.Less(t, w.Hash(tcase.Key), w.Size())
			}
		})
	}
}

func TestWindow_SizeString(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Window  Window[uint64]
		ExpSize uint64
		ExpStr  string
	}{
		{Window[uint64]{0, 0}, 2, "bit 0"},
		{Window[uint64]{5, 5}, 2, "bit 5"},
		{Window[uint64]{5, 3}, 8, "bits 5 to 3"},
		{Window[uint64]{15, 0}, 1 << 16, "bits 15 to 0"},
		{Window[uint64]{62, 0}, 1 << 63, "bits 62 to 0"},
		{Window[uint64]{63, 0}, math.MaxUint64, "bits 63 to 0"},
	} {
		tcase := tcase

		t.Run(tcase.ExpStr, func(t *testing.T) {
			assert.Equal(t, tcase.ExpSize, tcase.Window.Size())
			assert.Equal(t, tcase.ExpStr, tcase.Window.String())
		})
	}
}

func TestNewWindow(t *testing.T) {
	t.Parallel()

	w, err := NewWindow[uint64](5, 3)
	require.NoError(t, err)
	assert.Equal(t, Window[uint64]{L: 5, R: 3}, w)

	_, err = NewWindow[uint64](63, 0)
	assert.NoError(t, err)

	for _, tcase := range []*struct {
		L, R int
	}{
		{3, 5},
		{64, 0},
		{2, -1},
	} {
		_, err := NewWindow[uint64](tcase.L, tcase.R)
		assert.ErrorIs(t, err, ErrBadWindow, "[%d,%d]", tcase.L, tcase.R)
	}

	_, err = NewWindow[uint32](32, 0)
	assert.ErrorIs(t, err, ErrBadWindow)

	assert.Panics(t, func() { MustWindow[uint64](3, 5) })
	assert.NotPanics(t, func() { MustWindow[uint32](31, 31) })
}

func TestWindow_IsCritical(t *testing.T) {
	t.Parallel()

	w := Window[uint64]{L: 1, R: 0}

	assert.True(t, w.IsCritical([]uint64{1, 2, 3}))   // 3 of 4 buckets
	assert.False(t, w.IsCritical([]uint64{1, 2}))     // 2 of 4 buckets
	assert.False(t, w.IsCritical([]uint64{4, 8, 12})) // all in bucket 0

	assert.True(t, Window[uint64]{L: 3, R: 3}.IsCritical([]uint64{0, 8}))
}

func TestCriticalWindow(t *testing.T) {
	t.Parallel()

	scenario := make([]uint64, len(scenarioCases))
	for i, c := range scenarioCases {
		scenario[i] = c.Key
	}

	for _, tcase := range []*struct {
		Keys   []uint64
		ExpStr string
	}{
		{[]uint64{0, 1}, "bit 0"},
		{[]uint64{1, 2}, "bit 1"},
		{[]uint64{1, 2, 3}, "bits 1 to 0"},
		{[]uint64{8, 16}, "bit 4"},
		{[]uint64{33, 37, 41, 60}, "bits 3 to 2"},
		{[]uint64{2048, 2082}, "bit 5"},
		{[]uint64{0x10, 0x20, 0x30, 0x40}, "bits 5 to 4"},
		{[]uint64{0, 1 << 63}, "bit 63"},
		{scenario, "bits 5 to 3"},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprint(tcase.Keys)
		)

		t.Run(name, func(t *testing.T) {
			w := CriticalWindow(tcase.Keys)

			assert.Equal(t, tcase.ExpStr, w.String())
			assert.Greater(t, MappedCardinality[uint64](tcase.Keys, w), uint64(1))
		})
	}
}

func TestCriticalWindow_Uint32(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bits 1 to 0", CriticalWindow([]uint32{1, 2, 3}).String())
	assert.Equal(t, "bit 31", CriticalWindow([]uint32{0, 1 << 31}).String())
	assert.Equal(t, "bits 5 to 3", CriticalWindow([]uint32{8, 16, 33, 37, 41, 60, 144, 264, 291, 1032, 2048, 2082}).String())
}

func TestShiftMask(t *testing.T) {
	t.Parallel()

	var s Strategy[uint64] = ShiftMask[uint64]{}

	d := s.Discriminator([]uint64{33, 37, 41, 60})

	require.IsType(t, Window[uint64]{}, d)
	assert.Equal(t, Window[uint64]{L: 3, R: 2}, d)
	assert.Equal(t, "window", s.Name())
}
