// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reverts

import (
	"errors"
)

// ErrRevert is raised when a pool operation cannot proceed.
// The operation aborts with no partial state change visible.
type ErrRevert struct {
	message string
}

func New(message string) *ErrRevert {
	return &ErrRevert{
		message: message,
	}
}

func (e *ErrRevert) Error() string {
	return e.message
}

var (
	// ErrInvalidConfiguration pool construction rejected, e.g. malformed funder list.
	ErrInvalidConfiguration = New("invalid pool configuration")

	// ErrNotEligible a reward funder attempted to deposit as a contributor.
	ErrNotEligible = New("funder is not eligible to deposit")

	// ErrUnauthorized a non-funder attempted to fund a reward.
	ErrUnauthorized = New("account is not a reward funder")

	// ErrIntervalNotElapsed funding attempted before the configured interval
	// passed since the current round opened.
	ErrIntervalNotElapsed = New("round interval not elapsed")

	// ErrNoDeposit withdraw attempted by an account with no snapshot history.
	ErrNoDeposit = New("no deposit")

	// ErrNothingToWithdraw the computed payout (balance + reward) is zero.
	ErrNothingToWithdraw = New("nothing to withdraw")

	// ErrUnderflow a subtraction would make a balance negative.
	// Indicates a caller or engine invariant violation.
	ErrUnderflow = New("balance underflow")

	// ErrOverflow arithmetic would exceed the representable range.
	ErrOverflow = New("amount overflow")
)

// IsRevertErr tells whether err carries an ErrRevert.
func IsRevertErr(err any) bool {
	if err == nil {
		return false
	}
	e, ok := err.(error)
	if !ok {
		return false
	}
	var ve *ErrRevert
	return errors.As(e, &ve)
}
