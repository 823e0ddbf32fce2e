// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package rewards

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/rewardpool/pool/delta"
	"github.com/vechain/rewardpool/pool/ledger"
	"github.com/vechain/rewardpool/pool/reverts"
)

func newTable(t *testing.T, entries ...Entry) *Table {
	t.Helper()
	tbl := NewTable()
	for _, e := range entries {
		tbl.Restore(e)
	}
	return tbl
}

func Test_EmptySeriesEarnsNothing(t *testing.T) {
	tbl := newTable(t, Entry{Round: 1, Reward: 100, Total: 100})

	sum, err := TotalRewardOf(nil, 0, tbl)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), sum)
}

func Test_SoleDepositor(t *testing.T) {
	tbl := newTable(t, Entry{Round: 1, Reward: 100, Total: 40})
	series := []ledger.Snapshot{{Round: 1, Balance: 40}}

	sum, err := TotalRewardOf(series, 0, tbl)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), sum)
}

func Test_ProportionalFloor(t *testing.T) {
	// D1=1, D2=2, total 3, reward 100: shares floor to 33 and 66,
	// the remainder 1 belongs to neither account.
	tbl := newTable(t, Entry{Round: 1, Reward: 100, Total: 3})

	s1, err := TotalRewardOf([]ledger.Snapshot{{Round: 1, Balance: 1}}, 0, tbl)
	require.NoError(t, err)
	s2, err := TotalRewardOf([]ledger.Snapshot{{Round: 1, Balance: 2}}, 0, tbl)
	require.NoError(t, err)

	assert.Equal(t, uint64(33), s1)
	assert.Equal(t, uint64(66), s2)
	assert.Less(t, s1+s2, uint64(100))
}

// A round with no snapshot entry for the account contributes zero to its
// reward, even though the account's carried-forward balance was part of
// that round's total. Payout math depends on this asymmetry; it is not a
// bug to be fixed here.
func Test_PassiveRoundEarnsNothing(t *testing.T) {
	// account deposits 50 in round 1 and never touches round 2;
	// both rounds carry a reward and the account's balance stays in the total.
	tbl := newTable(t,
		Entry{Round: 1, Reward: 100, Total: 100},
		Entry{Round: 2, Reward: 80, Total: 100},
	)
	series := []ledger.Snapshot{{Round: 1, Balance: 50}}

	sum, err := TotalRewardOf(series, 0, tbl)
	require.NoError(t, err)
	assert.Equal(t, uint64(50), sum, "round 2 contributes nothing without a snapshot")
}

func Test_ClaimCursorBoundsTheWalk(t *testing.T) {
	tbl := newTable(t,
		Entry{Round: 1, Reward: 100, Total: 10},
		Entry{Round: 2, Reward: 60, Total: 10},
		Entry{Round: 3, Reward: 30, Total: 10},
	)
	series := []ledger.Snapshot{
		{Round: 1, Balance: 10},
		{Round: 2, Balance: 10},
		{Round: 3, Balance: 10},
	}

	sum, err := TotalRewardOf(series, 0, tbl)
	require.NoError(t, err)
	assert.Equal(t, uint64(190), sum)

	sum, err = TotalRewardOf(series, 1, tbl)
	require.NoError(t, err)
	assert.Equal(t, uint64(90), sum, "rounds at or before the cursor are excluded")

	sum, err = TotalRewardOf(series, 3, tbl)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), sum)
}

func Test_ZeroTotalRoundPaysNothing(t *testing.T) {
	tbl := newTable(t, Entry{Round: 2, Reward: 100, Total: 0})
	series := []ledger.Snapshot{{Round: 2, Balance: 0}}

	sum, err := TotalRewardOf(series, 0, tbl)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), sum)
}

func Test_ExactDivisionScenario(t *testing.T) {
	// five contributors 25/10/50/5/10 (total 100), reward 100: the split
	// is exact because every balance divides the total evenly.
	tbl := newTable(t, Entry{Round: 1, Reward: 100, Total: 100})

	for _, balance := range []uint64{25, 10, 50, 5, 10} {
		sum, err := TotalRewardOf([]ledger.Snapshot{{Round: 1, Balance: balance}}, 0, tbl)
		require.NoError(t, err)
		assert.Equal(t, balance, sum)
	}
}

func Test_LargeAmountsExactArithmetic(t *testing.T) {
	// balance * reward far exceeds 64 bits; the division must still be exact.
	half := uint64(math.MaxUint64 / 2)
	tbl := newTable(t, Entry{Round: 1, Reward: math.MaxUint64 - 1, Total: math.MaxUint64 - 1})
	series := []ledger.Snapshot{{Round: 1, Balance: half}}

	sum, err := TotalRewardOf(series, 0, tbl)
	require.NoError(t, err)
	assert.Equal(t, half, sum)
}

func Test_RunningSumOverflow(t *testing.T) {
	tbl := newTable(t,
		Entry{Round: 1, Reward: math.MaxUint64, Total: 1},
		Entry{Round: 2, Reward: math.MaxUint64, Total: 1},
	)
	series := []ledger.Snapshot{
		{Round: 1, Balance: 1},
		{Round: 2, Balance: 1},
	}

	_, err := TotalRewardOf(series, 0, tbl)
	assert.ErrorIs(t, err, reverts.ErrOverflow)
}

func Test_AggregationIgnoresTableMutationsBelowCursor(t *testing.T) {
	tbl := newTable(t,
		Entry{Round: 4, Reward: 100, Total: 10},
		Entry{Round: 7, Reward: 100, Total: 20},
	)
	require.NoError(t, tbl.AdjustTotal(7, 20, delta.Add))
	series := []ledger.Snapshot{
		{Round: 4, Balance: 10},
		{Round: 7, Balance: 10},
	}

	sum, err := TotalRewardOf(series, 4, tbl)
	require.NoError(t, err)
	assert.Equal(t, uint64(25), sum)
}
