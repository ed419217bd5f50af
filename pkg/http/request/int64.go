package request

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Int64 accepts a JSON integer or a numeric string. Browser clients send
// category ids taken from object keys, which arrive as strings.
type Int64 int64

func (v *Int64) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	s = strings.TrimSuffix(strings.TrimPrefix(s, `"`), `"`)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*v = Int64(n)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return fmt.Errorf("not an integer: %s", b)
	}
	*v = Int64(f)
	return nil
}
