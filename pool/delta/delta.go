// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package delta

import (
	"math/bits"

	"github.com/vechain/rewardpool/pool/reverts"
)

// Op tags a balance mutation as an addition or a subtraction.
// All balance updates in the pool go through Op.Combine so that the
// underflow/overflow checks live on a single code path.
type Op uint8

const (
	Add Op = iota + 1
	Sub
)

func (op Op) String() string {
	switch op {
	case Add:
		return "add"
	case Sub:
		return "sub"
	default:
		return "unknown"
	}
}

// Combine applies the op to base and amount.
// Add fails with ErrOverflow when the sum exceeds the representable range.
// Sub fails with ErrUnderflow when amount exceeds base; balances are never negative.
func (op Op) Combine(base, amount uint64) (uint64, error) {
	switch op {
	case Add:
		sum, carry := bits.Add64(base, amount, 0)
		if carry != 0 {
			return 0, reverts.ErrOverflow
		}
		return sum, nil
	case Sub:
		diff, borrow := bits.Sub64(base, amount, 0)
		if borrow != 0 {
			return 0, reverts.ErrUnderflow
		}
		return diff, nil
	default:
		return 0, reverts.New("unknown delta op")
	}
}
