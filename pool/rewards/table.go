// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package rewards

import (
	"sort"

	"github.com/vechain/rewardpool/pool/delta"
)

type entry struct {
	reward uint64
	total  uint64
}

// Entry is the persisted form of one round's ledger line.
type Entry struct {
	Round  uint32
	Reward uint64
	Total  uint64
}

// Table is the per-round ledger: the reward deposited for a round and the
// total contributed balance recorded as of that round. Unset rounds read
// as zero.
type Table struct {
	entries map[uint32]entry
}

func NewTable() *Table {
	return &Table{entries: make(map[uint32]entry)}
}

// RecordReward adds amount to the reward of the round being closed.
func (t *Table) RecordReward(round uint32, amount uint64) error {
	e := t.entries[round]
	reward, err := delta.Add.Combine(e.reward, amount)
	if err != nil {
		return err
	}
	e.reward = reward
	t.entries[round] = e
	return nil
}

// AdjustTotal applies a deposit or withdrawal delta to the round's total.
func (t *Table) AdjustTotal(round uint32, amount uint64, op delta.Op) error {
	e := t.entries[round]
	total, err := op.Combine(e.total, amount)
	if err != nil {
		return err
	}
	e.total = total
	t.entries[round] = e
	return nil
}

// SeedNextTotal carries the closing round's total forward into the newly
// opened round, before any same-round deposits are applied.
func (t *Table) SeedNextTotal(prev, next uint32) {
	e := t.entries[next]
	e.total = t.entries[prev].total
	t.entries[next] = e
}

// RewardAt returns the reward deposited for the round, 0 if unset.
func (t *Table) RewardAt(round uint32) uint64 {
	return t.entries[round].reward
}

// TotalAt returns the total contributed balance as of the round, 0 if unset.
func (t *Table) TotalAt(round uint32) uint64 {
	return t.entries[round].total
}

// Entries returns all set rounds in ascending order, for persistence.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for round, e := range t.entries {
		out = append(out, Entry{Round: round, Reward: e.reward, Total: e.total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Round < out[j].Round })
	return out
}

// Restore installs a persisted round line.
func (t *Table) Restore(e Entry) {
	t.entries[e.Round] = entry{reward: e.Reward, total: e.Total}
}
