// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"

	"github.com/vechain/rewardpool/co"
	"github.com/vechain/rewardpool/kv"
	"github.com/vechain/rewardpool/log"
	"github.com/vechain/rewardpool/metrics"
	"github.com/vechain/rewardpool/pool"
)

func initLogger(ctx *cli.Context) {
	logLevel := log.LevelFromVerbosity(ctx.Int(verbosityFlag.Name))
	lvl := new(slog.LevelVar)
	lvl.Set(logLevel)
	useColor := isatty.IsTerminal(os.Stderr.Fd())
	log.SetDefault(log.NewTerminalHandler(os.Stderr, lvl, useColor))
}

func loadConfig(ctx *cli.Context) (pool.Config, error) {
	path := ctx.String(configFlag.Name)
	if path == "" {
		return pool.Config{}, errors.New("--config is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pool.Config{}, errors.WithMessage(err, "read config file")
	}
	var cfg pool.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return pool.Config{}, errors.WithMessage(err, "parse config file")
	}
	return cfg, nil
}

func openStore(ctx *cli.Context) (kv.Store, error) {
	dataDir := ctx.String(dataDirFlag.Name)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, errors.WithMessage(err, "create data dir")
	}
	store, err := kv.New(filepath.Join(dataDir, "pool.db"))
	if err != nil {
		return nil, errors.WithMessage(err, "open pool database")
	}
	return store, nil
}

func startAPIServer(ctx *cli.Context, handler http.Handler) (string, func(), error) {
	addr := ctx.String(apiAddrFlag.Name)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, errors.Wrapf(err, "listen API addr [%v]", addr)
	}

	if origins := ctx.String(apiCorsFlag.Name); origins != "" {
		handler = handlers.CORS(
			handlers.AllowedOrigins([]string{origins}),
			handlers.AllowedHeaders([]string{"content-type"}),
		)(handler)
	}
	handler = handlers.CompressHandler(handler)

	srv := &http.Server{Handler: handler, ReadHeaderTimeout: time.Second, ReadTimeout: 5 * time.Second}
	var goes co.Goes
	goes.Go(func() {
		srv.Serve(listener)
	})
	return "http://" + listener.Addr().String() + "/", func() {
		srv.Shutdown(context.Background())
		goes.Wait()
	}, nil
}

func startMetricsServer(addr string) (string, func(), error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, errors.Wrapf(err, "listen metrics API addr [%v]", addr)
	}

	router := mux.NewRouter()
	router.PathPrefix("/metrics").Handler(metrics.HTTPHandler())
	handler := handlers.CompressHandler(router)

	srv := &http.Server{Handler: handler, ReadHeaderTimeout: time.Second, ReadTimeout: 5 * time.Second}
	var goes co.Goes
	goes.Go(func() {
		srv.Serve(listener)
	})
	return "http://" + listener.Addr().String() + "/metrics", func() {
		srv.Close()
		goes.Wait()
	}, nil
}

func handleExitSignal() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		exitSignalCh := make(chan os.Signal, 1)
		signal.Notify(exitSignalCh, os.Interrupt, syscall.SIGTERM)

		sig := <-exitSignalCh
		logger.Info("exit signal received", "signal", sig)
		cancel()
	}()
	return ctx
}

func nowFunc() uint64 {
	return uint64(time.Now().Unix())
}

func printStartupMessage(engine *pool.Pool, apiURL, metricsURL string) {
	fmt.Printf(`Starting %v
    Round       [ #%v ]
    Funders     [ %v ]
    API portal  [ %v ]
    Metrics     [ %v ]
`,
		"RewardPool "+fullVersion(),
		engine.CurrentRound(),
		len(engine.Funders()),
		apiURL,
		func() string {
			if metricsURL == "" {
				return "disabled"
			}
			return metricsURL
		}(),
	)
}

func defaultDataDir() string {
	if home := homeDir(); home != "" {
		return filepath.Join(home, ".org.vechain.rewardpool")
	}
	return ""
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return ""
}
