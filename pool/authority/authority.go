// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package authority

import (
	"github.com/pkg/errors"

	"github.com/vechain/rewardpool/acc"
	"github.com/vechain/rewardpool/pool/reverts"
)

// Roster is the fixed set of accounts allowed to fund rewards and thereby
// close rounds. Every other account is a contributor.
type Roster struct {
	funders map[acc.Address]struct{}
	list    []acc.Address
}

// New validates the funder list and builds the roster.
// An empty list, a zero address or a duplicate is an InvalidConfiguration.
func New(funders []acc.Address) (*Roster, error) {
	if len(funders) == 0 {
		return nil, errors.WithMessage(reverts.ErrInvalidConfiguration, "empty funder list")
	}

	set := make(map[acc.Address]struct{}, len(funders))
	list := make([]acc.Address, 0, len(funders))
	for _, addr := range funders {
		if addr.IsZero() {
			return nil, errors.WithMessage(reverts.ErrInvalidConfiguration, "zero funder address")
		}
		if _, ok := set[addr]; ok {
			return nil, errors.WithMessagef(reverts.ErrInvalidConfiguration, "duplicate funder %s", addr)
		}
		set[addr] = struct{}{}
		list = append(list, addr)
	}
	return &Roster{funders: set, list: list}, nil
}

// IsFunder tells whether addr may fund rewards.
func (r *Roster) IsFunder(addr acc.Address) bool {
	_, ok := r.funders[addr]
	return ok
}

// IsContributor tells whether addr may deposit a stake. Funders may not.
func (r *Roster) IsContributor(addr acc.Address) bool {
	return !r.IsFunder(addr)
}

// Funders returns the roster in declaration order.
func (r *Roster) Funders() []acc.Address {
	cpy := make([]acc.Address, len(r.list))
	copy(cpy, r.list)
	return cpy
}
