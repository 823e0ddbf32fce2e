// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pool

import (
	"math"

	"github.com/vechain/rewardpool/acc"
)

// Status summarizes the open round.
type Status struct {
	Round           uint32 `json:"round"`
	TotalDeposit    uint64 `json:"totalDeposit"`
	IntervalElapsed bool   `json:"intervalElapsed"`
}

// Account is the external view of a contributor.
type Account struct {
	Address       acc.Address `json:"address"`
	Balance       uint64      `json:"balance"`
	SnapshotRound uint32      `json:"snapshotRound"`
	PendingReward uint64      `json:"pendingReward"`
	Funder        bool        `json:"funder"`
}

// RoundInfo is the external view of a single round.
type RoundInfo struct {
	Round        uint32 `json:"round"`
	Reward       uint64 `json:"reward"`
	TotalDeposit uint64 `json:"totalDeposit"`
}

// DepositRequest body of POST /pool/deposits.
type DepositRequest struct {
	Address acc.Address `json:"address"`
	Amount  uint64      `json:"amount"`
}

// WithdrawRequest body of POST /pool/withdrawals.
type WithdrawRequest struct {
	Address acc.Address `json:"address"`
}

// WithdrawReceipt response of POST /pool/withdrawals.
type WithdrawReceipt struct {
	Address acc.Address `json:"address"`
	Payout  uint64      `json:"payout"`
}

// FundRequest body of POST /pool/rewards.
type FundRequest struct {
	Funder acc.Address `json:"funder"`
	Amount uint64      `json:"amount"`
}

// FundReceipt response of POST /pool/rewards.
type FundReceipt struct {
	ClosedRound uint32 `json:"closedRound"`
	OpenRound   uint32 `json:"openRound"`
	Reward      uint64 `json:"reward"`
}

const maxRound = math.MaxUint32
