// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"strconv"
	"strings"
)

// Uint64Key - integer key for the tree
type Uint64Key uint64

// Compare - numeric ordering
func (k Uint64Key) Compare(x interface{}) int {
	j := x.(Uint64Key)
	switch {
	case k < j:
		return -1
	case k > j:
		return +1
	}
	return 0
}

// String - decimal form of the key
func (k Uint64Key) String() string {
	return strconv.FormatUint(uint64(k), 10)
}

// StringKey - text key for the tree
type StringKey string

// Compare - byte-wise ordering
func (k StringKey) Compare(x interface{}) int {
	return strings.Compare(string(k), string(x.(StringKey)))
}

// String - the key itself
func (k StringKey) String() string {
	return string(k)
}
