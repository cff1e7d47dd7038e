package sorting

// Quick sorts a in place with recursive partition-exchange.
// The pivot is the last element of each range, so already sorted input
// degrades to O(n^2) time and O(n) recursion depth.
func Quick(a []int) {
	quick(a, 0, len(a)-1)
}

func quick(a []int, low, high int) {
	if low < high {
		pi := partition(a, low, high)
		quick(a, low, pi-1)
		quick(a, pi+1, high)
	}
}

// partition places a[high] at its final index p, with a[low:p] < pivot
// and a[p+1:high+1] >= pivot, and returns p.
func partition(a []int, low, high int) int {
	pivot := a[high]
	i := low - 1
	for j := low; j < high; j++ {
		if a[j] < pivot {
			i++
			a[i], a[j] = a[j], a[i]
		}
	}
	a[i+1], a[high] = a[high], a[i+1]
	return i + 1
}
