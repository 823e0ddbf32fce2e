// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import "sync"

// LazyLoad helpers defer meter creation to first use, so package-level meter
// declarations bind to the backend installed at startup instead of the noop
// default that is current at package init time.

func LazyLoadCounter(name string) func() CountMeter {
	return sync.OnceValue(func() CountMeter {
		return Counter(name)
	})
}

func LazyLoadCounterVec(name string, labels []string) func() CountVecMeter {
	return sync.OnceValue(func() CountVecMeter {
		return CounterVec(name, labels)
	})
}

func LazyLoadGauge(name string) func() GaugeMeter {
	return sync.OnceValue(func() GaugeMeter {
		return Gauge(name)
	})
}

func LazyLoadHistogramVec(name string, labels []string, buckets []int64) func() HistogramVecMeter {
	return sync.OnceValue(func() HistogramVecMeter {
		return HistogramVec(name, labels, buckets)
	})
}
