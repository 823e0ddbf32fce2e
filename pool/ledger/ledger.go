// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/vechain/rewardpool/acc"
	"github.com/vechain/rewardpool/pool/delta"
)

// Snapshot marks a contributor's balance at the round it last changed.
type Snapshot struct {
	Round   uint32
	Balance uint64
}

// Ledger keeps, per account, the sparse ordered sequence of balance
// snapshots plus the claim cursor. An entry exists only for rounds in which
// the account actually deposited or withdrew; entries are never deleted,
// a withdrawal writes a zero-balance entry instead.
//
// The ledger exclusively owns each series; accessors return copies.
type Ledger struct {
	series  map[acc.Address][]Snapshot
	cursors map[acc.Address]uint32
}

func New() *Ledger {
	return &Ledger{
		series:  make(map[acc.Address][]Snapshot),
		cursors: make(map[acc.Address]uint32),
	}
}

// RecordDelta applies a balance change for the given open round.
//
// A new entry is appended when the account has no entries or its last entry
// belongs to an earlier round. A second change within the same still-open
// round updates the last entry in place. A last entry with a round beyond
// the current one means the caller broke clock monotonicity and is rejected.
func (l *Ledger) RecordDelta(addr acc.Address, round uint32, amount uint64, op delta.Op) error {
	series := l.series[addr]

	last := Snapshot{}
	if len(series) > 0 {
		last = series[len(series)-1]
	}
	if last.Round > round {
		return errors.Errorf("snapshot round regression: have %d, recording %d", last.Round, round)
	}

	balance, err := op.Combine(last.Balance, amount)
	if err != nil {
		return err
	}

	if last.Round == round && len(series) > 0 {
		series[len(series)-1].Balance = balance
	} else {
		l.series[addr] = append(series, Snapshot{Round: round, Balance: balance})
	}
	return nil
}

// LatestSnapshot returns the account's last recorded snapshot,
// or the zero snapshot (0, 0) for an account that never participated.
func (l *Ledger) LatestSnapshot(addr acc.Address) Snapshot {
	series := l.series[addr]
	if len(series) == 0 {
		return Snapshot{}
	}
	return series[len(series)-1]
}

// SeriesOf returns a copy of the account's full snapshot sequence.
func (l *Ledger) SeriesOf(addr acc.Address) []Snapshot {
	series := l.series[addr]
	if len(series) == 0 {
		return nil
	}
	cpy := make([]Snapshot, len(series))
	copy(cpy, series)
	return cpy
}

// ClaimCursor returns the round through which the account has already been
// paid, 0 if it never claimed.
func (l *Ledger) ClaimCursor(addr acc.Address) uint32 {
	return l.cursors[addr]
}

// SetClaimCursor advances the claim cursor. The cursor never moves backward
// and never beyond the account's latest snapshot round.
func (l *Ledger) SetClaimCursor(addr acc.Address, round uint32) error {
	if round < l.cursors[addr] {
		return errors.Errorf("claim cursor regression: have %d, setting %d", l.cursors[addr], round)
	}
	if latest := l.LatestSnapshot(addr); round > latest.Round {
		return errors.Errorf("claim cursor beyond latest snapshot: latest %d, setting %d", latest.Round, round)
	}
	l.cursors[addr] = round
	return nil
}

// Accounts returns every account with recorded history, in address order.
func (l *Ledger) Accounts() []acc.Address {
	addrs := make([]acc.Address, 0, len(l.series))
	for addr := range l.series {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool {
		return string(addrs[i].Bytes()) < string(addrs[j].Bytes())
	})
	return addrs
}

// Restore installs a persisted account history, validating the series
// invariant (strictly increasing rounds, none zero).
func (l *Ledger) Restore(addr acc.Address, series []Snapshot, cursor uint32) error {
	prev := uint32(0)
	for _, snap := range series {
		if snap.Round <= prev {
			return errors.Errorf("restore %s: snapshot rounds not strictly increasing", addr)
		}
		prev = snap.Round
	}
	if cursor > prev {
		return errors.Errorf("restore %s: claim cursor %d beyond latest snapshot %d", addr, cursor, prev)
	}
	cpy := make([]Snapshot, len(series))
	copy(cpy, series)
	l.series[addr] = cpy
	l.cursors[addr] = cursor
	return nil
}
