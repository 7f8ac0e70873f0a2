/*
Copyright 2026 The burstplan Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/burstplan/burstplan/internal/config"
	"github.com/burstplan/burstplan/internal/logging"
	"github.com/burstplan/burstplan/internal/metrics"
	"github.com/burstplan/burstplan/internal/optimizer"
	"github.com/burstplan/burstplan/internal/report"
	"github.com/burstplan/burstplan/pkg/catalog"
)

// env carries everything a command needs once flags and config are loaded.
type env struct {
	ctx      context.Context
	fs       *pflag.FlagSet
	cfg      *config.PlannerConfig
	catalog  *catalog.Catalog
	registry *prometheus.Registry
	recorder *metrics.Recorder
	render   *report.Renderer
	server   *http.Server
}

func setup(ctx context.Context, name string, args []string, extra func(*pflag.FlagSet), out io.Writer) (*env, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	configFile := fs.String("config", "", "YAML config file. Flags and BURSTPLAN_* variables override it.")
	config.BindFlags(fs)
	if extra != nil {
		extra(fs)
	}
	logOpts := logging.NewOptions()
	goFlags := flag.NewFlagSet(name, flag.ContinueOnError)
	logOpts.BindFlags(goFlags)
	fs.AddGoFlagSet(goFlags)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	logger := logging.NewLogger(logOpts)
	ctx = ctrl.LoggerInto(ctx, logger)

	cfg, err := config.Load(viper.New(), fs, *configFile)
	if err != nil {
		return nil, err
	}
	cat, err := config.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	render, err := report.NewRenderer(out, cfg.Output)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		return nil, err
	}

	e := &env{
		ctx:      ctx,
		fs:       fs,
		cfg:      cfg,
		catalog:  cat,
		registry: registry,
		recorder: recorder,
		render:   render,
	}
	if cfg.MetricsBindAddress != "" {
		e.serveMetrics(cfg.MetricsBindAddress)
	}
	return e, nil
}

func (e *env) serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{}))
	e.server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger := ctrl.LoggerFrom(e.ctx)
	go func() {
		logger.Info("Serving metrics", "address", addr)
		if err := e.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(err, "Metrics server failed")
		}
	}()
}

func (e *env) close() {
	if e.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = e.server.Shutdown(ctx)
}

func (e *env) optimizer() (*optimizer.Optimizer, error) {
	oc, err := e.cfg.OptimizerConfig()
	if err != nil {
		return nil, err
	}
	return optimizer.NewOptimizer(oc, e.recorder)
}
