package version

import (
	"strconv"
	"strings"
)

// IsNewer reports whether version a is strictly newer than version b,
// both expected in dotted "major.minor.patch" form.
func IsNewer(a, b string) bool {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	for i := 0; i < len(as) && i < len(bs); i++ {
		av, aerr := strconv.Atoi(as[i])
		bv, berr := strconv.Atoi(bs[i])
		if aerr != nil || berr != nil {
			return false
		}

		if av != bv {
			return av > bv
		}
	}

	return len(as) > len(bs)
}
