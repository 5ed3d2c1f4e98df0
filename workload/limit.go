// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/rbtree/fault"
)

// NewLimiter - a limiter allowing perSecond operations, zero for
// unlimited
func NewLimiter(perSecond int) (*rate.Limiter, error) {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if err := SetRate(limiter, perSecond); nil != err {
		return nil, err
	}
	return limiter, nil
}

// SetRate - change the rate of an existing limiter, zero for unlimited
//
// the limiter may be in use by a running round
func SetRate(limiter *rate.Limiter, perSecond int) error {
	if perSecond < 0 {
		return fault.ErrInvalidRate
	}
	if 0 == perSecond {
		limiter.SetLimit(rate.Inf)
		return nil
	}
	burst := perSecond / 10
	if burst < 1 {
		burst = 1
	}
	limiter.SetBurst(burst)
	limiter.SetLimit(rate.Limit(perSecond))
	return nil
}

// limiting for a single operation, a nil limiter never waits
func pace(limiter *rate.Limiter) error {
	if nil == limiter {
		return nil
	}
	r := limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
