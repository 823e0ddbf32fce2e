// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pool

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/vechain/rewardpool/acc"
	"github.com/vechain/rewardpool/kv"
	"github.com/vechain/rewardpool/pool/ledger"
	"github.com/vechain/rewardpool/pool/rewards"
	"github.com/vechain/rewardpool/pool/roundclock"
)

// Key layout: one clock record, one record per account keyed by address,
// one record per round keyed by big-endian round number (so prefix
// iteration yields ascending rounds).
var (
	clockKey      = []byte("clk")
	accountPrefix = []byte("a/")
	roundPrefix   = []byte("r/")
)

type clockRecord struct {
	Round uint32
	Start uint64
}

type accountRecord struct {
	Series []ledger.Snapshot
	Cursor uint32
}

type roundRecord struct {
	Reward uint64
	Total  uint64
}

func accountKey(addr acc.Address) []byte {
	return append(append([]byte(nil), accountPrefix...), addr.Bytes()...)
}

func roundKey(round uint32) []byte {
	key := append([]byte(nil), roundPrefix...)
	return binary.BigEndian.AppendUint32(key, round)
}

func (p *Pool) saveClock(batch kv.Batch) {
	data, _ := rlp.EncodeToBytes(&clockRecord{
		Round: p.clock.Current(),
		Start: p.clock.StartMarker(),
	})
	_ = batch.Put(clockKey, data)
}

func (p *Pool) saveAccount(batch kv.Batch, addr acc.Address) error {
	data, err := rlp.EncodeToBytes(&accountRecord{
		Series: p.ledger.SeriesOf(addr),
		Cursor: p.ledger.ClaimCursor(addr),
	})
	if err != nil {
		return errors.WithMessagef(err, "encode account %s", addr)
	}
	return batch.Put(accountKey(addr), data)
}

func (p *Pool) saveRound(batch kv.Batch, round uint32) error {
	data, err := rlp.EncodeToBytes(&roundRecord{
		Reward: p.table.RewardAt(round),
		Total:  p.table.TotalAt(round),
	})
	if err != nil {
		return errors.Errorf("encode round %d: %v", round, err)
	}
	return batch.Put(roundKey(round), data)
}

// restore loads persisted pool state. It reports false when the store holds
// no clock record, i.e. the pool has never been initialized.
func (p *Pool) restore(interval uint64) (bool, error) {
	data, err := p.store.Get(clockKey)
	if err != nil {
		if p.store.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	var clk clockRecord
	if err := rlp.DecodeBytes(data, &clk); err != nil {
		return false, errors.WithMessage(err, "decode clock")
	}
	if clk.Round == 0 {
		return false, errors.New("corrupt clock record: round 0")
	}
	p.clock = roundclock.Restore(interval, clk.Round, clk.Start)

	err = p.store.Iterate(kv.Range{Prefix: accountPrefix}, func(key, value []byte) error {
		if len(key) != len(accountPrefix)+acc.AddressLength {
			return errors.New("malformed account key")
		}
		addr := acc.BytesToAddress(key[len(accountPrefix):])

		var rec accountRecord
		if err := rlp.DecodeBytes(value, &rec); err != nil {
			return errors.WithMessagef(err, "decode account %s", addr)
		}
		return p.ledger.Restore(addr, rec.Series, rec.Cursor)
	})
	if err != nil {
		return false, err
	}

	err = p.store.Iterate(kv.Range{Prefix: roundPrefix}, func(key, value []byte) error {
		if len(key) != len(roundPrefix)+4 {
			return errors.New("malformed round key")
		}
		round := binary.BigEndian.Uint32(key[len(roundPrefix):])

		var rec roundRecord
		if err := rlp.DecodeBytes(value, &rec); err != nil {
			return errors.Errorf("decode round %d: %v", round, err)
		}
		p.table.Restore(rewards.Entry{Round: round, Reward: rec.Reward, Total: rec.Total})
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
