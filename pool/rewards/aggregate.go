// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package rewards

import (
	"github.com/holiman/uint256"

	"github.com/vechain/rewardpool/pool/delta"
	"github.com/vechain/rewardpool/pool/ledger"
	"github.com/vechain/rewardpool/pool/reverts"
)

// TotalRewardOf sums the account's unclaimed proportional reward across all
// rounds strictly after cursor, walking the snapshot series backward from
// its last entry.
//
// An account is credited for a round only when it has a recorded snapshot at
// that exact round. Rounds the account did not touch contribute nothing to
// its numerator even though its carried-forward balance still dilutes those
// rounds' totals. Withdraw payouts depend on this exact behavior; see
// Test_PassiveRoundEarnsNothing before changing it.
func TotalRewardOf(series []ledger.Snapshot, cursor uint32, tbl *Table) (uint64, error) {
	if len(series) == 0 {
		return 0, nil
	}

	fromRound := cursor + 1

	var sum uint64
	for i := len(series) - 1; i >= 0; i-- {
		snap := series[i]
		if snap.Round < fromRound {
			break
		}
		share, err := rewardAt(tbl, snap.Round, snap.Balance)
		if err != nil {
			return 0, err
		}
		if sum, err = delta.Add.Combine(sum, share); err != nil {
			return 0, err
		}
	}
	return sum, nil
}

// rewardAt computes floor(balance * reward / total) for one round in exact
// integer arithmetic. A round with a zero total pays nothing; the floor
// remainder stays in the pool.
func rewardAt(tbl *Table, round uint32, balance uint64) (uint64, error) {
	total := tbl.TotalAt(round)
	if total == 0 {
		return 0, nil
	}

	share := new(uint256.Int).SetUint64(balance)
	share.Mul(share, new(uint256.Int).SetUint64(tbl.RewardAt(round)))
	share.Div(share, new(uint256.Int).SetUint64(total))
	if !share.IsUint64() {
		return 0, reverts.ErrOverflow
	}
	return share.Uint64(), nil
}
