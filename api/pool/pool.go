// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pool

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/vechain/rewardpool/acc"
	"github.com/vechain/rewardpool/api/restutil"
	"github.com/vechain/rewardpool/pool"
	"github.com/vechain/rewardpool/pool/reverts"
)

// Pool exposes the reward pool over HTTP.
type Pool struct {
	engine *pool.Pool
	now    func() uint64
}

func New(engine *pool.Pool) *Pool {
	return &Pool{
		engine: engine,
		now:    func() uint64 { return uint64(time.Now().Unix()) },
	}
}

// revertToHTTPError maps engine reverts onto 4xx responses. Anything that is
// not a revert is an internal failure and keeps its 500.
func revertToHTTPError(err error) error {
	if !reverts.IsRevertErr(err) {
		return err
	}
	switch {
	case errors.Is(err, reverts.ErrNotEligible), errors.Is(err, reverts.ErrUnauthorized):
		return restutil.Forbidden(err)
	case errors.Is(err, reverts.ErrIntervalNotElapsed):
		return restutil.Conflict(err)
	default:
		return restutil.BadRequest(err)
	}
}

func parseAddressVar(req *http.Request) (acc.Address, error) {
	addr, err := acc.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return acc.Address{}, restutil.BadRequest(errors.WithMessage(err, "address"))
	}
	return *addr, nil
}

func (p *Pool) handleGetStatus(w http.ResponseWriter, _ *http.Request) error {
	round := p.engine.CurrentRound()
	return restutil.WriteJSON(w, &Status{
		Round:           round,
		TotalDeposit:    p.engine.TotalDepositAt(round),
		IntervalElapsed: p.engine.IntervalElapsed(p.now()),
	})
}

func (p *Pool) handleGetAccount(w http.ResponseWriter, req *http.Request) error {
	addr, err := parseAddressVar(req)
	if err != nil {
		return err
	}
	pending, err := p.engine.TotalRewardOf(addr)
	if err != nil {
		return errors.WithMessage(err, "aggregate reward")
	}
	snap := p.engine.LatestSnapshotOf(addr)
	return restutil.WriteJSON(w, &Account{
		Address:       addr,
		Balance:       snap.Balance,
		SnapshotRound: snap.Round,
		PendingReward: pending,
		Funder:        p.engine.IsFunder(addr),
	})
}

func (p *Pool) handleGetRound(w http.ResponseWriter, req *http.Request) error {
	n, err := strconv.ParseUint(mux.Vars(req)["round"], 10, 64)
	if err != nil || n == 0 || n > maxRound {
		return restutil.BadRequest(errors.New("round: invalid round number"))
	}
	round := uint32(n)
	return restutil.WriteJSON(w, &RoundInfo{
		Round:        round,
		Reward:       p.engine.TotalRewardAt(round),
		TotalDeposit: p.engine.TotalDepositAt(round),
	})
}

func (p *Pool) handleDeposit(w http.ResponseWriter, req *http.Request) error {
	var body DepositRequest
	if err := restutil.ParseJSON(req.Body, &body); err != nil {
		return restutil.BadRequest(errors.WithMessage(err, "body"))
	}
	if err := p.engine.Deposit(body.Address, body.Amount); err != nil {
		return revertToHTTPError(err)
	}
	return restutil.WriteJSON(w, restutil.M{"round": p.engine.CurrentRound()})
}

func (p *Pool) handleWithdraw(w http.ResponseWriter, req *http.Request) error {
	var body WithdrawRequest
	if err := restutil.ParseJSON(req.Body, &body); err != nil {
		return restutil.BadRequest(errors.WithMessage(err, "body"))
	}
	payout, err := p.engine.Withdraw(body.Address)
	if err != nil {
		return revertToHTTPError(err)
	}
	return restutil.WriteJSON(w, &WithdrawReceipt{
		Address: body.Address,
		Payout:  payout,
	})
}

func (p *Pool) handleFundReward(w http.ResponseWriter, req *http.Request) error {
	var body FundRequest
	if err := restutil.ParseJSON(req.Body, &body); err != nil {
		return restutil.BadRequest(errors.WithMessage(err, "body"))
	}
	closing := p.engine.CurrentRound()
	if err := p.engine.FundReward(body.Funder, body.Amount, p.now()); err != nil {
		return revertToHTTPError(err)
	}
	return restutil.WriteJSON(w, &FundReceipt{
		ClosedRound: closing,
		OpenRound:   p.engine.CurrentRound(),
		Reward:      body.Amount,
	})
}

func (p *Pool) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").Methods(http.MethodGet).HandlerFunc(restutil.WrapHandlerFunc(p.handleGetStatus))
	sub.Path("/accounts/{address}").Methods(http.MethodGet).HandlerFunc(restutil.WrapHandlerFunc(p.handleGetAccount))
	sub.Path("/rounds/{round}").Methods(http.MethodGet).HandlerFunc(restutil.WrapHandlerFunc(p.handleGetRound))
	sub.Path("/deposits").Methods(http.MethodPost).HandlerFunc(restutil.WrapHandlerFunc(p.handleDeposit))
	sub.Path("/withdrawals").Methods(http.MethodPost).HandlerFunc(restutil.WrapHandlerFunc(p.handleWithdraw))
	sub.Path("/rewards").Methods(http.MethodPost).HandlerFunc(restutil.WrapHandlerFunc(p.handleFundReward))
}
