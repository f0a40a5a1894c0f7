/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package client

import "github.com/prometheus/client_golang/prometheus"

// metrics bundles the Prometheus collectors exported when a Conn is
// built with Options.Metrics set; kept separate from the histogram map
// so EnableRequestHistogram's in-process counters work even without a
// registry around.
type metrics struct {
	requests *prometheus.CounterVec
}

func newMetrics() *metrics {
	return &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "komclient",
			Name:      "requests_total",
			Help:      "Requests submitted, by request type.",
		}, []string{"request"}),
	}
}

// Collectors returns the Prometheus collectors so callers can register
// them against their own registry (prometheus.MustRegister(conn.Collectors()...)).
func (c *Conn) Collectors() []prometheus.Collector {
	if c.metrics == nil {
		return nil
	}
	return []prometheus.Collector{c.metrics.requests}
}
