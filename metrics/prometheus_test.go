// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	dto "github.com/prometheus/client_model/go"
)

func TestPromMetrics(t *testing.T) {
	InitializePrometheusMetrics()

	// 2 ways of accessing it - useful to avoid lookups
	count1 := Counter("count1")
	Counter("count2")
	countVec := CounterVec("countVec1", []string{"zeroOrOne"})
	gauge1 := Gauge("gauge1")
	histVec := HistogramVec("hist1", []string{"zeroOrOne"}, BucketHTTPReqs)

	count1.Add(1)
	randCount2 := rand.Intn(100) + 1
	for i := 0; i < randCount2; i++ {
		Counter("count2").Add(1)
	}

	totalCountVec := 0
	countVecN := rand.Intn(100) + 2
	for i := 0; i < countVecN; i++ {
		zeroOrOne := i % 2
		countVec.AddWithLabel(int64(i), map[string]string{"zeroOrOne": strconv.Itoa(zeroOrOne)})
		totalCountVec += i
	}

	totalGauge := 0
	gaugeN := rand.Intn(100) + 2
	for i := 0; i < gaugeN; i++ {
		gauge1.Add(int64(i))
		totalGauge += i
	}

	histTotal := 0
	histN := rand.Intn(100) + 2
	for i := 0; i < histN; i++ {
		zeroOrOne := i % 2
		histVec.ObserveWithLabels(int64(i), map[string]string{"zeroOrOne": strconv.Itoa(zeroOrOne)})
		histTotal += i
	}

	gatherers := prometheus.Gatherers{prometheus.DefaultGatherer}
	metricFamilies, err := gatherers.Gather()
	require.NoError(t, err)

	families := make(map[string]*dto.MetricFamily)
	for _, mf := range metricFamilies {
		families[mf.GetName()] = mf
	}

	require.Equal(t, float64(1), families["rewardpool_metrics_count1"].Metric[0].GetCounter().GetValue())
	require.Equal(t, float64(randCount2), families["rewardpool_metrics_count2"].Metric[0].GetCounter().GetValue())

	sumCountVec := families["rewardpool_metrics_countVec1"].Metric[0].GetCounter().GetValue() +
		families["rewardpool_metrics_countVec1"].Metric[1].GetCounter().GetValue()
	require.Equal(t, float64(totalCountVec), sumCountVec)

	require.Equal(t, float64(totalGauge), families["rewardpool_metrics_gauge1"].Metric[0].GetGauge().GetValue())

	sumHistVec := families["rewardpool_metrics_hist1"].Metric[0].GetHistogram().GetSampleSum() +
		families["rewardpool_metrics_hist1"].Metric[1].GetHistogram().GetSampleSum()
	require.Equal(t, float64(histTotal), sumHistVec)
}

func TestNoopMetrics(t *testing.T) {
	m := defaultNoopMetrics()

	// all meters are inert and never panic
	m.GetOrCreateCountMeter("a").Add(1)
	m.GetOrCreateCountVecMeter("b", []string{"l"}).AddWithLabel(1, map[string]string{"l": "v"})
	m.GetOrCreateGaugeMeter("c").Set(1)
	m.GetOrCreateHistogramVecMeter("d", []string{"l"}, nil).ObserveWithLabels(1, map[string]string{"l": "v"})
	require.Nil(t, m.GetOrCreateHandler())
}
