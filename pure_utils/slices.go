package pure_utils

import (
	"github.com/hashicorp/go-set/v2"
)

// ContainsSameElements compares two slices as sets, ignoring order.
func ContainsSameElements[T comparable](a, b []T) bool {
	return set.From(a).Equal(set.From(b))
}
