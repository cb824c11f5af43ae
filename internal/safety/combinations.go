package safety

// combinations enumerates every choose-k combination of the indices
// 0..n-1 in lexicographic order and calls yield with each one. The slice
// passed to yield is reused between calls; callers must not retain it.
// Enumeration stops early when yield returns false.
//
// k == 0 yields the empty combination exactly once. k > n yields nothing.
//
// Design decision: This is an iterative index-stepping generator rather
// than a recursive subsequence builder. The loop needs only one reusable
// index buffer, keeps no hidden state between calls, and short-circuits
// cleanly for the existential search in IsSafeWithTolerance.
func combinations(n, k int, yield func(indices []int) bool) {
	if k < 0 || k > n {
		return
	}
	if k == 0 {
		yield(nil)
		return
	}

	// Start with the lexicographically first combination: 0,1,...,k-1.
	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}

	for {
		if !yield(indices) {
			return
		}

		// Find the rightmost index that can still advance. Index i may
		// grow up to n-k+i, leaving room for the indices after it.
		i := k - 1
		for i >= 0 && indices[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}

		indices[i]++
		for j := i + 1; j < k; j++ {
			indices[j] = indices[j-1] + 1
		}
	}
}
