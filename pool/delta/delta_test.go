// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package delta

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vechain/rewardpool/pool/reverts"
)

func Test_Combine(t *testing.T) {
	tests := []struct {
		name   string
		op     Op
		base   uint64
		amount uint64
		want   uint64
		err    error
	}{
		{"add", Add, 5, 3, 8, nil},
		{"add zero", Add, 5, 0, 5, nil},
		{"add to max", Add, math.MaxUint64 - 1, 1, math.MaxUint64, nil},
		{"add overflow", Add, math.MaxUint64, 1, 0, reverts.ErrOverflow},
		{"sub", Sub, 5, 3, 2, nil},
		{"sub to zero", Sub, 5, 5, 0, nil},
		{"sub underflow", Sub, 3, 5, 0, reverts.ErrUnderflow},
		{"unknown op", Op(0), 1, 1, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op.Combine(tt.base, tt.amount)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			if tt.op != Add && tt.op != Sub {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_OpString(t *testing.T) {
	assert.Equal(t, "add", Add.String())
	assert.Equal(t, "sub", Sub.String())
	assert.Equal(t, "unknown", Op(9).String())
}
