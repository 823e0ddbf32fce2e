// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pool

import "github.com/vechain/rewardpool/metrics"

var (
	metricDeposits     = metrics.LazyLoadCounter("pool_deposit_count")
	metricWithdrawals  = metrics.LazyLoadCounter("pool_withdraw_count")
	metricFundings     = metrics.LazyLoadCounter("pool_fund_count")
	metricCurrentRound = metrics.LazyLoadGauge("pool_current_round")
	metricTotalBalance = metrics.LazyLoadGauge("pool_total_balance")
)
