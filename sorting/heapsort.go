package sorting

// Heap sorts a in place: build a max-heap bottom-up, then repeatedly move
// the root behind the shrinking heap.
func Heap(a []int) {
	n := len(a)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(a, n, i)
	}
	for end := n - 1; end > 0; end-- {
		a[0], a[end] = a[end], a[0]
		siftDown(a, end, 0)
	}
}

// siftDown restores the max-heap property for the subtree rooted at i in a[:n].
func siftDown(a []int, n, i int) {
	for {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < n && a[left] > a[largest] {
			largest = left
		}
		if right < n && a[right] > a[largest] {
			largest = right
		}
		if largest == i {
			return
		}
		a[i], a[largest] = a[largest], a[i]
		i = largest
	}
}
