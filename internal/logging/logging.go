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

// Package logging configures the structured logger shared by all packages.
// Engines retrieve it with ctrl.LoggerFrom(ctx); verbosity levels below are
// passed to logr's V().
package logging

import (
	"flag"
	"io"
	"os"

	"github.com/go-logr/logr"
	"go.uber.org/zap/zapcore"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// Verbosity levels for logger.V().
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// Options wraps the controller-runtime zap options so callers can bind them to a flag set.
type Options struct {
	zap.Options
}

// NewOptions returns production defaults: JSON output, info level.
func NewOptions() *Options {
	return &Options{Options: zap.Options{
		Development: false,
		Level:       zapcore.Level(-INFO),
	}}
}

// BindFlags registers --zap-devel, --zap-log-level and friends on fs.
func (o *Options) BindFlags(fs *flag.FlagSet) {
	o.Options.BindFlags(fs)
}

// NewLogger builds a logger from opts and installs it as the global ctrl logger.
func NewLogger(opts *Options) logr.Logger {
	if opts == nil {
		opts = NewOptions()
	}
	logger := zap.New(zap.UseFlagOptions(&opts.Options))
	ctrl.SetLogger(logger)
	return logger
}

// NewVerboseLogger builds a development logger at the given verbosity writing to w.
func NewVerboseLogger(w io.Writer, verbosity int) logr.Logger {
	logger := zap.New(
		zap.UseDevMode(true),
		zap.WriteTo(w),
		zap.Level(zapcore.Level(-verbosity)),
	)
	ctrl.SetLogger(logger)
	return logger
}

// NewTestLogger installs a development logger at DEBUG verbosity for test suites.
func NewTestLogger() logr.Logger {
	return NewVerboseLogger(os.Stderr, DEBUG)
}
