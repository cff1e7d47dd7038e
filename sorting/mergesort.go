package sorting

import "cmp"

// Merge sorts a in place with top-down merge sort. Each half is copied out,
// sorted independently and merged back into a. Equal keys keep their order.
func Merge(a []int) {
	mergeFunc(a, cmp.Compare[int])
}

func mergeFunc[T any](a []T, compare func(x, y T) int) {
	if len(a) < 2 {
		return
	}
	mid := len(a) / 2
	left := append([]T(nil), a[:mid]...)
	right := append([]T(nil), a[mid:]...)
	mergeFunc(left, compare)
	mergeFunc(right, compare)
	merge(a, left, right, compare)
}

// merge writes the sorted union of left and right into dst, left-biased on ties.
// len(dst) must equal len(left)+len(right).
func merge[T any](dst, left, right []T, compare func(x, y T) int) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if compare(left[i], right[j]) <= 0 {
			dst[k] = left[i]
			i++
		} else {
			dst[k] = right[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}
