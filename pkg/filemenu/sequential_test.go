package filemenu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveNextAndLast(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name  string
		files []string
		base  string
		next  string
		last  string
	}{
		{"no files", nil, "run_", "run_000.map", "run_000.map"},
		{"single", []string{"run_000.map"}, "run_", "run_001.map", "run_000.map"},
		{"gap uses max", []string{"run_000.map", "run_007.map", "run_003.map"}, "run_", "run_008.map", "run_007.map"},
		{"other bases ignored", []string{"walk_004.map", "run_001.map", "xrun_009.map"}, "run_", "run_002.map", "run_001.map"},
		{"non sequential ignored", []string{"run_.map", "run_ab1.map", "run_1.map", "a.map"}, "run_", "run_000.map", "run_000.map"},
		{"short names are not sequential", []string{"r.map", ".map"}, "run_", "run_000.map", "run_000.map"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := cfg.Derive(tt.base, tt.files, ModeNext)
			require.NoError(t, err)
			assert.Equal(t, tt.next, next)

			last, err := cfg.Derive(tt.base, tt.files, ModeLast)
			require.NoError(t, err)
			assert.Equal(t, tt.last, last)
		})
	}
}

func TestDeriveSequenceFromZero(t *testing.T) {
	cfg := DefaultConfig()
	var files []string
	for k := 0; k < 12; k++ {
		files = append(files, cfg.SequentialName("b_", k))

		next, err := cfg.Derive("b_", files, ModeNext)
		require.NoError(t, err)
		assert.Equal(t, cfg.SequentialName("b_", k+1), next)

		last, err := cfg.Derive("b_", files, ModeLast)
		require.NoError(t, err)
		assert.Equal(t, cfg.SequentialName("b_", k), last)
	}
}

func TestDeriveOverflow(t *testing.T) {
	cfg := DefaultConfig()

	_, err := cfg.Derive("run_", []string{"run_999.map"}, ModeNext)
	assert.ErrorIs(t, err, ErrSequentialOverflow)

	name, err := cfg.Derive("run_", []string{"run_998.map"}, ModeNext)
	require.NoError(t, err)
	assert.Equal(t, "run_999.map", name)

	name, err = cfg.Derive("run_", []string{"run_999.map"}, ModeLast)
	require.NoError(t, err)
	assert.Equal(t, "run_999.map", name)
}

func TestCollapse(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		in   string
		want string
	}{
		{"run_004.map", "run_"},
		{"my_long_name_120.map", "my_long_name_"},
		{"_001.map", "_"},
		{"notes.map", "notes.map"},
		{"run_04.map", "run_04.map"},
		{"run_0004.map", "run_0004.map"},
		{"run004.map", "run004.map"},
		{"run_00a.map", "run_00a.map"},
		{"run_004.txt", "run_004.txt"},
		{"x", "x"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cfg.Collapse(tt.in), "Collapse(%q)", tt.in)
	}
}

func TestCollapseRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	for _, base := range []string{"run_", "a_", "level_one_", "_"} {
		for _, k := range []int{0, 1, 42, 999} {
			name := cfg.SequentialName(base, k)
			assert.Equal(t, base, cfg.Collapse(name), "round trip of %s", name)
		}
	}
}

func TestAlternateConvention(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extension = "sav"
	cfg.Separator = '-'
	cfg.PaddingWidth = 2
	cfg.MaxCounter = 99
	require.NoError(t, cfg.Validate())

	files := []string{"slot-00.sav", "slot-05.sav", "slot_07.sav"}
	next, err := cfg.Derive("slot-", files, ModeNext)
	require.NoError(t, err)
	assert.Equal(t, "slot-06.sav", next)
	assert.Equal(t, "slot-", cfg.Collapse(next))

	_, err = cfg.Derive("slot-", []string{"slot-99.sav"}, ModeNext)
	assert.ErrorIs(t, err, ErrSequentialOverflow)
}

func ExampleConfig_Derive() {
	cfg := DefaultConfig()
	name, _ := cfg.Derive("run_", []string{"run_000.map", "run_001.map"}, ModeNext)
	fmt.Println(name)
	// Output: run_002.map
}
