package question

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginate(t *testing.T) {
	cases := []struct {
		name  string
		total int
		page  int
		want  []int
	}{
		{"first full page", 25, 1, seq(10)},
		{"second full page", 25, 2, []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}},
		{"short last page", 25, 3, []int{20, 21, 22, 23, 24}},
		{"exact fit", 10, 1, seq(10)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Paginate(seq(tc.total), tc.page, DefaultPageSize)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	cases := []struct {
		name  string
		total int
		page  int
	}{
		{"empty list", 0, 1},
		{"past the end", 25, 4},
		{"exact boundary", 20, 3},
		{"zero page", 25, 0},
		{"negative page", 25, -1},
		{"huge page", 25, math.MaxInt},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Paginate(seq(tc.total), tc.page, DefaultPageSize)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestPaginateNeverLeavesWindow(t *testing.T) {
	for total := 1; total <= 35; total++ {
		all := seq(total)
		for page := 1; (page-1)*DefaultPageSize < total; page++ {
			got, err := Paginate(all, page, DefaultPageSize)
			require.NoError(t, err)

			start := (page - 1) * DefaultPageSize
			assert.Len(t, got, min(DefaultPageSize, total-start))
			for _, v := range got {
				assert.GreaterOrEqual(t, v, start)
				assert.Less(t, v, start+DefaultPageSize)
			}
		}
	}
}
