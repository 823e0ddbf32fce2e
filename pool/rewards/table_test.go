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
	"github.com/vechain/rewardpool/pool/reverts"
)

func Test_UnsetRoundsReadZero(t *testing.T) {
	tbl := NewTable()

	assert.Equal(t, uint64(0), tbl.RewardAt(1))
	assert.Equal(t, uint64(0), tbl.TotalAt(1))
}

func Test_RecordReward(t *testing.T) {
	tbl := NewTable()

	require.NoError(t, tbl.RecordReward(1, 100))
	assert.Equal(t, uint64(100), tbl.RewardAt(1))
	assert.Equal(t, uint64(0), tbl.RewardAt(2))

	err := tbl.RecordReward(2, math.MaxUint64)
	require.NoError(t, err)
	assert.ErrorIs(t, tbl.RecordReward(2, 1), reverts.ErrOverflow)
}

func Test_AdjustTotal(t *testing.T) {
	tbl := NewTable()

	require.NoError(t, tbl.AdjustTotal(1, 100, delta.Add))
	require.NoError(t, tbl.AdjustTotal(1, 40, delta.Sub))
	assert.Equal(t, uint64(60), tbl.TotalAt(1))

	assert.ErrorIs(t, tbl.AdjustTotal(1, 61, delta.Sub), reverts.ErrUnderflow)
	assert.Equal(t, uint64(60), tbl.TotalAt(1), "failed adjust leaves the total untouched")
}

func Test_SeedNextTotal(t *testing.T) {
	tbl := NewTable()

	require.NoError(t, tbl.AdjustTotal(1, 100, delta.Add))
	require.NoError(t, tbl.RecordReward(1, 7))
	tbl.SeedNextTotal(1, 2)

	assert.Equal(t, uint64(100), tbl.TotalAt(2))
	assert.Equal(t, uint64(0), tbl.RewardAt(2), "reward is not carried forward")

	// same-round deposits after the seed stack on top of the carry
	require.NoError(t, tbl.AdjustTotal(2, 50, delta.Add))
	assert.Equal(t, uint64(150), tbl.TotalAt(2))
}

func Test_EntriesRoundTrip(t *testing.T) {
	tbl := NewTable()

	require.NoError(t, tbl.AdjustTotal(2, 10, delta.Add))
	require.NoError(t, tbl.RecordReward(1, 5))
	require.NoError(t, tbl.AdjustTotal(1, 20, delta.Add))

	entries := tbl.Entries()
	assert.Equal(t, []Entry{
		{Round: 1, Reward: 5, Total: 20},
		{Round: 2, Reward: 0, Total: 10},
	}, entries)

	restored := NewTable()
	for _, e := range entries {
		restored.Restore(e)
	}
	assert.Equal(t, entries, restored.Entries())
}
