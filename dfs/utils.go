package dfs

import "github.com/katalvlaran/graphina/core"

// indexOf returns the first index of val in s, or -1 if not found.
func indexOf(s []core.NodeID, val core.NodeID) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}
	return -1
}

// reverseIDs returns a new slice containing the elements of s in reverse
// order.
func reverseIDs(s []core.NodeID) []core.NodeID {
	out := make([]core.NodeID, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}
	return out
}

// compareIDs lexicographically compares two equal-length NodeID slices by
// minting sequence. Returns -1 if a < b, 0 if equal, +1 if a > b.
func compareIDs(a, b []core.NodeID) int {
	for i := range a {
		switch {
		case a[i].Less(b[i]):
			return -1
		case b[i].Less(a[i]):
			return 1
		}
	}
	return 0
}

// minimalRotation implements Booth's algorithm to find the
// lexicographically minimal rotation of s, by NodeID ordering.
func minimalRotation(s []core.NodeID) []core.NodeID {
	n := len(s)
	doubled := make([]core.NodeID, 0, 2*n)
	doubled = append(doubled, s...)
	doubled = append(doubled, s...)

	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j].Less(doubled[k+i+1]) {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j].Less(doubled[k]) {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}
	res := make([]core.NodeID, n)
	for i := 0; i < n; i++ {
		res[i] = doubled[k+i]
	}
	return res
}
