// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"github.com/vechain/rewardpool/acc"
	"github.com/vechain/rewardpool/log"
	"github.com/vechain/rewardpool/pool"
)

// newLoggingRail returns a transfer rail that records payouts in the service
// log. The daemon keeps the books; moving real value happens on whatever rail
// the operator bridges this log to.
func newLoggingRail() pool.TransferRail {
	railLogger := log.WithContext("pkg", "rail")
	return pool.TransferFunc(func(to acc.Address, amount uint64) error {
		railLogger.Info("payout", "to", to, "amount", amount)
		return nil
	})
}
