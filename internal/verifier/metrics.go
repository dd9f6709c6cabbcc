// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package verifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeMined    = "mined"
	outcomeNotMined = "not_mined"
	outcomeError    = "error"
)

var (
	metricHeaderChecks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bspvd_header_checks_total",
			Help: "Total number of block header identity checks",
		},
	)
	metricVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bspvd_verifications_total",
			Help: "Total number of transaction inclusion verifications by outcome",
		},
		[]string{"outcome"},
	)
)
