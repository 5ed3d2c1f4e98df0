// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - seeded random insert/delete rounds against an
// ordered container, validating the container after each operation
//
// A round is fully determined by its configuration and seed, so any
// failure can be replayed by running the same round again.
package workload
