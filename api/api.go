// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"net/http"

	"github.com/gorilla/mux"

	apipool "github.com/vechain/rewardpool/api/pool"
	"github.com/vechain/rewardpool/pool"
)

// New return api router.
func New(engine *pool.Pool) http.HandlerFunc {
	router := mux.NewRouter()
	apipool.New(engine).Mount(router, "/pool")
	router.Use(metricsMiddleware)
	return func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		router.ServeHTTP(w, req)
	}
}
