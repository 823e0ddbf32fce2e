// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pool

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/vechain/rewardpool/acc"
	"github.com/vechain/rewardpool/kv"
	"github.com/vechain/rewardpool/log"
	"github.com/vechain/rewardpool/pool/authority"
	"github.com/vechain/rewardpool/pool/delta"
	"github.com/vechain/rewardpool/pool/ledger"
	"github.com/vechain/rewardpool/pool/reverts"
	"github.com/vechain/rewardpool/pool/rewards"
	"github.com/vechain/rewardpool/pool/roundclock"
)

var logger = log.WithContext("pkg", "pool")

// TransferRail moves value out of the pool. The pool commits its own state
// before calling it and never retries a failed transfer; retry policy, if
// any, belongs to the rail's owner.
type TransferRail interface {
	Transfer(to acc.Address, amount uint64) error
}

// TransferFunc adapts a function to the TransferRail interface.
type TransferFunc func(to acc.Address, amount uint64) error

func (f TransferFunc) Transfer(to acc.Address, amount uint64) error {
	return f(to, amount)
}

// Config collects the static pool parameters.
type Config struct {
	// Funders are the accounts allowed to fund rewards and close rounds.
	Funders []acc.Address `yaml:"funders"`
	// Interval is the minimum marker distance between two reward fundings.
	Interval uint64 `yaml:"interval"`
}

// Pool is the round-based proportional reward ledger.
//
// All mutating operations run under one write lock: each runs to completion
// without interleaving, matching the whole-transaction atomicity the
// accounting rules assume. Read accessors share a read lock and only ever
// observe fully committed state.
type Pool struct {
	mu sync.RWMutex

	roster *authority.Roster
	clock  *roundclock.Clock
	ledger *ledger.Ledger
	table  *rewards.Table

	store kv.Store
	rail  TransferRail

	// set when a batch commit fails; the in-memory state is then ahead of
	// the store and the instance refuses further mutations (see commit).
	commitErr error
}

// New builds a pool from config, restoring persisted state from the store
// when present, or opening round 1 at the now marker otherwise.
func New(cfg Config, store kv.Store, rail TransferRail, now uint64) (*Pool, error) {
	if cfg.Interval == 0 {
		return nil, errors.WithMessage(reverts.ErrInvalidConfiguration, "zero round interval")
	}
	if store == nil {
		return nil, errors.WithMessage(reverts.ErrInvalidConfiguration, "nil store")
	}
	if rail == nil {
		return nil, errors.WithMessage(reverts.ErrInvalidConfiguration, "nil transfer rail")
	}
	roster, err := authority.New(cfg.Funders)
	if err != nil {
		return nil, err
	}

	p := &Pool{
		roster: roster,
		ledger: ledger.New(),
		table:  rewards.NewTable(),
		store:  store,
		rail:   rail,
	}

	restored, err := p.restore(cfg.Interval)
	if err != nil {
		return nil, errors.WithMessage(err, "restore pool state")
	}
	if !restored {
		p.clock = roundclock.New(cfg.Interval, now)
		batch := store.NewBatch()
		p.saveClock(batch)
		if err := batch.Write(); err != nil {
			return nil, errors.WithMessage(err, "persist genesis state")
		}
		logger.Info("pool initialized", "round", p.clock.Current(), "start", now)
	} else {
		logger.Info("pool state restored", "round", p.clock.Current())
	}
	metricCurrentRound().Set(int64(p.clock.Current()))
	metricTotalBalance().Set(int64(p.table.TotalAt(p.clock.Current())))
	return p, nil
}

// commit writes the batch to the store. A failed write leaves the in-memory
// state ahead of the durable one, so the instance halts: every later mutation
// is rejected until the pool is rebuilt from the store.
func (p *Pool) commit(batch kv.Batch, what string) error {
	if err := batch.Write(); err != nil {
		p.commitErr = errors.WithMessagef(err, "commit %s", what)
		logger.Error("commit failed, pool halted", "op", what, "err", err)
		return p.commitErr
	}
	return nil
}

// Deposit records a contribution into the currently open round.
// Funders are not eligible to deposit.
func (p *Pool) Deposit(addr acc.Address, amount uint64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.commitErr != nil {
		return errors.WithMessage(p.commitErr, "pool halted")
	}
	if p.roster.IsFunder(addr) {
		return reverts.ErrNotEligible
	}
	round := p.clock.Current()

	// The round total bounds every account balance, so checking headroom on
	// the total up front means neither update below can fail after the other
	// has been applied.
	if _, err := delta.Add.Combine(p.table.TotalAt(round), amount); err != nil {
		return err
	}
	if err := p.ledger.RecordDelta(addr, round, amount, delta.Add); err != nil {
		return err
	}
	if err := p.table.AdjustTotal(round, amount, delta.Add); err != nil {
		return err
	}

	batch := p.store.NewBatch()
	if err := p.saveAccount(batch, addr); err != nil {
		return err
	}
	if err := p.saveRound(batch, round); err != nil {
		return err
	}
	if err := p.commit(batch, "deposit"); err != nil {
		return err
	}

	metricDeposits().Add(1)
	metricTotalBalance().Set(int64(p.table.TotalAt(round)))
	logger.Debug("deposit recorded", "account", addr, "round", round, "amount", amount)
	return nil
}

// Withdraw pays out the account's full balance plus every unclaimed reward
// accumulated since its last claim, zeroing the balance and advancing the
// claim cursor to the round of the account's last snapshot.
//
// Ledger state is durably committed before the transfer is attempted, so a
// failed transfer can never be retried into a double payout.
func (p *Pool) Withdraw(addr acc.Address) (uint64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.commitErr != nil {
		return 0, errors.WithMessage(p.commitErr, "pool halted")
	}
	series := p.ledger.SeriesOf(addr)
	if len(series) == 0 {
		return 0, reverts.ErrNoDeposit
	}
	last := series[len(series)-1]

	reward, err := rewards.TotalRewardOf(series, p.ledger.ClaimCursor(addr), p.table)
	if err != nil {
		return 0, err
	}
	total, err := delta.Add.Combine(last.Balance, reward)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, reverts.ErrNothingToWithdraw
	}

	round := p.clock.Current()
	if err := p.ledger.RecordDelta(addr, round, last.Balance, delta.Sub); err != nil {
		return 0, err
	}
	// the cursor lands on the last round the account actually held a
	// balance snapshot, not on the current round
	if err := p.ledger.SetClaimCursor(addr, last.Round); err != nil {
		return 0, err
	}
	if err := p.table.AdjustTotal(round, last.Balance, delta.Sub); err != nil {
		return 0, err
	}

	batch := p.store.NewBatch()
	if err := p.saveAccount(batch, addr); err != nil {
		return 0, err
	}
	if err := p.saveRound(batch, round); err != nil {
		return 0, err
	}
	if err := p.commit(batch, "withdraw"); err != nil {
		return 0, err
	}

	metricWithdrawals().Add(1)
	metricTotalBalance().Set(int64(p.table.TotalAt(round)))
	logger.Info("withdraw", "account", addr, "balance", last.Balance, "reward", reward)

	if err := p.rail.Transfer(addr, total); err != nil {
		logger.Warn("payout transfer failed", "account", addr, "amount", total, "err", err)
		return 0, errors.WithMessage(err, "transfer")
	}
	return total, nil
}

// FundReward deposits the reward for the currently open round, closes it and
// opens the next one. Only roster funders may call it, and only after the
// configured interval has elapsed since the round opened.
func (p *Pool) FundReward(funder acc.Address, amount, now uint64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.commitErr != nil {
		return errors.WithMessage(p.commitErr, "pool halted")
	}
	if !p.roster.IsFunder(funder) {
		return reverts.ErrUnauthorized
	}
	if !p.clock.IntervalElapsed(now) {
		return reverts.ErrIntervalNotElapsed
	}

	closing := p.clock.Current()
	if err := p.table.RecordReward(closing, amount); err != nil {
		return err
	}
	p.clock.Advance(now)
	opened := p.clock.Current()
	p.table.SeedNextTotal(closing, opened)

	batch := p.store.NewBatch()
	if err := p.saveRound(batch, closing); err != nil {
		return err
	}
	if err := p.saveRound(batch, opened); err != nil {
		return err
	}
	p.saveClock(batch)
	if err := p.commit(batch, "fund reward"); err != nil {
		return err
	}

	metricFundings().Add(1)
	metricCurrentRound().Set(int64(opened))
	logger.Info("round closed", "round", closing, "reward", amount, "total", p.table.TotalAt(closing), "opened", opened)
	return nil
}

// CurrentRound returns the currently open round.
func (p *Pool) CurrentRound() uint32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.clock.Current()
}

// IntervalElapsed reports whether a funding at the now marker would pass the
// interval gate.
func (p *Pool) IntervalElapsed(now uint64) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.clock.IntervalElapsed(now)
}

// LatestSnapshotOf returns the account's last recorded snapshot, (0, 0) for
// an account that never participated.
func (p *Pool) LatestSnapshotOf(addr acc.Address) ledger.Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.ledger.LatestSnapshot(addr)
}

// TotalRewardAt returns the reward deposited for the given round.
func (p *Pool) TotalRewardAt(round uint32) uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.table.RewardAt(round)
}

// TotalDepositAt returns the total contributed balance as of the given round.
func (p *Pool) TotalDepositAt(round uint32) uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.table.TotalAt(round)
}

// TotalRewardOf returns the account's accumulated unclaimed reward.
func (p *Pool) TotalRewardOf(addr acc.Address) (uint64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return rewards.TotalRewardOf(p.ledger.SeriesOf(addr), p.ledger.ClaimCursor(addr), p.table)
}

// IsFunder tells whether addr belongs to the funding authority.
func (p *Pool) IsFunder(addr acc.Address) bool {
	return p.roster.IsFunder(addr)
}

// Funders returns the configured funding authority.
func (p *Pool) Funders() []acc.Address {
	return p.roster.Funders()
}
