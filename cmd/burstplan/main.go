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

// Command burstplan sizes the elastic pool that absorbs a batch of jobs the
// fixed pool of a site cannot finish in time.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
)

const usageText = `usage: burstplan <command> [flags]

Commands:
  plan            sweep elastic pool sizes for a site and recommend one
  compare-sites   plan every catalog site with the same elastic instance
  sensitivity     compare frontiers across rates, instances or pricing tiers
  detail          schedule one configuration and break it down per pool
  apply           evaluate a BurstPlan manifest and print it with its status
  pricing         print the catalog rate card

Run 'burstplan <command> --help' for the flags of a command.
`

var errUsage = errors.New("usage")

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1], os.Args[2:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usageText)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "burstplan %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func run(ctx context.Context, name string, args []string, out io.Writer) error {
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}
	env, err := setup(ctx, name, args, cmd.flags, out)
	if err != nil {
		return err
	}
	defer env.close()
	return cmd.run(env)
}
