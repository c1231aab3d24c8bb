// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefmatch

import "strconv"

// natLess orders names lexicographically, except that trailing numeric
// suffixes compare by value: "Group9" sorts before "Group10".
func natLess(a, b string) bool {
	abase, anum := splitNumSuffix(a)
	bbase, bnum := splitNumSuffix(b)
	if abase != bbase {
		return abase < bbase
	}
	if anum != bnum {
		return anum < bnum
	}
	return a < b
}

func splitNumSuffix(s string) (base string, num int64) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) {
		return s, -1
	}
	n, err := strconv.ParseInt(s[i:], 10, 64)
	if err != nil {
		// suffix too long for int64, treat the whole name as opaque
		return s, -1
	}
	return s[:i], n
}
