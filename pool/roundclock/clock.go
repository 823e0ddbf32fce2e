// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package roundclock

// Round identifies a reward round. Rounds start at 1 and only ever increase;
// 0 is reserved to mean "never participated".
type Round = uint32

// Clock owns the current round id and the marker at which the round opened.
// The marker is an opaque monotonically increasing counter supplied by the
// caller, e.g. a block number or a logical tick.
type Clock struct {
	round    Round
	start    uint64
	interval uint64
}

// New creates a clock with round 1 open at the given marker.
func New(interval, now uint64) *Clock {
	return &Clock{
		round:    1,
		start:    now,
		interval: interval,
	}
}

// Restore rebuilds a clock from persisted state.
func Restore(interval uint64, round Round, start uint64) *Clock {
	return &Clock{
		round:    round,
		start:    start,
		interval: interval,
	}
}

// Current returns the currently open round.
func (c *Clock) Current() Round {
	return c.round
}

// Interval returns the configured funding interval.
func (c *Clock) Interval() uint64 {
	return c.interval
}

// StartMarker returns the marker at which the current round opened.
func (c *Clock) StartMarker() uint64 {
	return c.start
}

// IntervalElapsed reports whether now is strictly past the configured
// interval since the current round opened.
func (c *Clock) IntervalElapsed(now uint64) bool {
	return now > c.start+c.interval
}

// Advance closes the current round and opens the next one at now.
// The caller must have already verified IntervalElapsed.
func (c *Clock) Advance(now uint64) {
	c.round++
	c.start = now
}
