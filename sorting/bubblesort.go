package sorting

// Bubble sorts a in place with n-1 passes of adjacent swaps. Each pass
// leaves the largest unsettled element at the end, so the inner range shrinks.
func Bubble(a []int) {
	n := len(a)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
			}
		}
	}
}
