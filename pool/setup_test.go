// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pool

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/vechain/rewardpool/acc"
	"github.com/vechain/rewardpool/kv"
)

var (
	funder = acc.BytesToAddress([]byte("funder"))

	accA = acc.BytesToAddress([]byte("a"))
	accB = acc.BytesToAddress([]byte("b"))
	accC = acc.BytesToAddress([]byte("c"))
	accD = acc.BytesToAddress([]byte("d"))
	accE = acc.BytesToAddress([]byte("e"))
)

// recordingRail captures payouts and can be told to fail.
type recordingRail struct {
	payouts map[acc.Address]uint64
	failure error
}

func newRecordingRail() *recordingRail {
	return &recordingRail{payouts: make(map[acc.Address]uint64)}
}

func (r *recordingRail) Transfer(to acc.Address, amount uint64) error {
	if r.failure != nil {
		return r.failure
	}
	r.payouts[to] += amount
	return nil
}

func newTestPool(t *testing.T) (*Pool, *recordingRail) {
	t.Helper()
	store, err := kv.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	rail := newRecordingRail()
	p, err := New(Config{Funders: []acc.Address{funder}, Interval: 10}, store, rail, 0)
	require.NoError(t, err)
	return p, rail
}

// TestSequence drives a pool through a scripted scenario step by step,
// failing fast on the step that breaks.
type TestSequence struct {
	pool *Pool
	now  uint64

	funcs []func(t *testing.T)
}

func NewSequence(pool *Pool) *TestSequence {
	return &TestSequence{pool: pool}
}

func (ts *TestSequence) AddFunc(f func(t *testing.T)) *TestSequence {
	ts.funcs = append(ts.funcs, f)
	return ts
}

func (ts *TestSequence) Deposit(addr acc.Address, amount uint64) *TestSequence {
	return ts.AddFunc(func(t *testing.T) {
		if err := ts.pool.Deposit(addr, amount); err != nil {
			t.Fatalf("failed to deposit %d for %s: %v", amount, addr, err)
		}
	})
}

func (ts *TestSequence) FundReward(amount uint64) *TestSequence {
	return ts.AddFunc(func(t *testing.T) {
		ts.now += ts.pool.clock.Interval() + 1
		if err := ts.pool.FundReward(funder, amount, ts.now); err != nil {
			t.Fatalf("failed to fund reward %d: %v", amount, err)
		}
	})
}

func (ts *TestSequence) Withdraw(addr acc.Address, want uint64) *TestSequence {
	return ts.AddFunc(func(t *testing.T) {
		got, err := ts.pool.Withdraw(addr)
		if err != nil {
			t.Fatalf("failed to withdraw for %s: %v", addr, err)
		}
		if got != want {
			t.Fatalf("withdraw for %s: got %d, want %d", addr, got, want)
		}
	})
}

func (ts *TestSequence) ExpectReward(addr acc.Address, want uint64) *TestSequence {
	return ts.AddFunc(func(t *testing.T) {
		got, err := ts.pool.TotalRewardOf(addr)
		if err != nil {
			t.Fatalf("failed to compute reward of %s: %v", addr, err)
		}
		if got != want {
			t.Fatalf("reward of %s: got %d, want %d", addr, got, want)
		}
	})
}

func (ts *TestSequence) Run(t *testing.T) {
	t.Helper()
	for _, f := range ts.funcs {
		f(t)
	}
}

var errRailDown = errors.New("rail down")
