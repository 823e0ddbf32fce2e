// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package instant implements the round-less companion of the main pool:
// every funded reward is split immediately, pro-rata over the balances held
// at that moment, into withdrawable credit. There is no clock, no interval
// gate and no snapshot history.
package instant

import (
	"sync"

	"github.com/holiman/uint256"

	"github.com/vechain/rewardpool/acc"
	"github.com/vechain/rewardpool/log"
	"github.com/vechain/rewardpool/pool"
	"github.com/vechain/rewardpool/pool/authority"
	"github.com/vechain/rewardpool/pool/delta"
	"github.com/vechain/rewardpool/pool/reverts"
)

var logger = log.WithContext("pkg", "instant")

type account struct {
	balance uint64
	credit  uint64
}

// Pool splits rewards the moment they are funded.
type Pool struct {
	mu sync.RWMutex

	roster   *authority.Roster
	accounts map[acc.Address]*account
	total    uint64

	rail pool.TransferRail
}

func New(funders []acc.Address, rail pool.TransferRail) (*Pool, error) {
	roster, err := authority.New(funders)
	if err != nil {
		return nil, err
	}
	if rail == nil {
		return nil, reverts.ErrInvalidConfiguration
	}
	return &Pool{
		roster:   roster,
		accounts: make(map[acc.Address]*account),
		rail:     rail,
	}, nil
}

// Deposit adds to the account's stake. Funders are not eligible.
func (p *Pool) Deposit(addr acc.Address, amount uint64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.roster.IsFunder(addr) {
		return reverts.ErrNotEligible
	}
	total, err := delta.Add.Combine(p.total, amount)
	if err != nil {
		return err
	}

	entry := p.accounts[addr]
	if entry == nil {
		entry = &account{}
		p.accounts[addr] = entry
	}
	entry.balance += amount // bounded by the total headroom check
	p.total = total
	return nil
}

// FundReward splits amount immediately over all current balances; each
// account's share is floored and the remainder stays with the funder's
// deposit history (it is simply never credited).
func (p *Pool) FundReward(funder acc.Address, amount uint64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.roster.IsFunder(funder) {
		return reverts.ErrUnauthorized
	}
	if p.total == 0 {
		// nobody to credit
		logger.Debug("reward funded with no stakers", "amount", amount)
		return nil
	}

	// Stage every credit before applying any, so a combine failure on one
	// account leaves no other account changed.
	type staged struct {
		entry  *account
		credit uint64
	}
	totalWord := new(uint256.Int).SetUint64(p.total)
	amountWord := new(uint256.Int).SetUint64(amount)
	credits := make([]staged, 0, len(p.accounts))
	for _, entry := range p.accounts {
		if entry.balance == 0 {
			continue
		}
		share := new(uint256.Int).SetUint64(entry.balance)
		share.Mul(share, amountWord)
		share.Div(share, totalWord)

		credit, err := delta.Add.Combine(entry.credit, share.Uint64())
		if err != nil {
			return err
		}
		credits = append(credits, staged{entry, credit})
	}
	for _, s := range credits {
		s.entry.credit = s.credit
	}
	return nil
}

// Withdraw pays out the account's balance plus accumulated credit.
func (p *Pool) Withdraw(addr acc.Address) (uint64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry := p.accounts[addr]
	if entry == nil {
		return 0, reverts.ErrNoDeposit
	}
	payout, err := delta.Add.Combine(entry.balance, entry.credit)
	if err != nil {
		return 0, err
	}
	if payout == 0 {
		return 0, reverts.ErrNothingToWithdraw
	}

	p.total -= entry.balance
	entry.balance = 0
	entry.credit = 0

	if err := p.rail.Transfer(addr, payout); err != nil {
		return 0, err
	}
	return payout, nil
}

// BalanceOf returns the account's current stake and unclaimed credit.
func (p *Pool) BalanceOf(addr acc.Address) (balance, credit uint64) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if entry := p.accounts[addr]; entry != nil {
		return entry.balance, entry.credit
	}
	return 0, 0
}

// TotalDeposit returns the sum of all current stakes.
func (p *Pool) TotalDeposit() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.total
}
