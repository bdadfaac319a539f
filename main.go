// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tfctl/tblsort/internal/command"
	"github.com/tfctl/tblsort/internal/config"
	"github.com/tfctl/tblsort/internal/log"
	"github.com/tfctl/tblsort/internal/version"
)

var ctx = context.Background()

// repeatable flags accumulate values and are never deduplicated.
var repeatable = map[string]bool{
	"--by": true,
}

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip arg processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound && args[1] != "completion" {
		args = expandSet(args, configSet)
		args = deduplicateFlags(args)
		log.Debugf("args after processing: args=%v", args)
	}

	return initAndRunApp(args)
}

// configSet reads the named set of extra args from the config file, e.g.
// sort.wide for "tblsort sort @wide".
func configSet(key string) []string {
	set, _ := config.GetStringSlice(key)
	return set
}

// expandSet replaces an @set argument with the args stored under
// <command>.<set> in the config file. Without an explicit @set, the
// <command>.defaults set is inserted right after the command.
func expandSet(args []string, lookup func(string) []string) []string {
	if len(args) < 2 {
		return args
	}

	idx := 2
	set := "defaults"
	for i, a := range args[2:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			idx = 2 + i
			args = append(args[:idx:idx], args[idx+1:]...)
			break
		}
	}

	var expanded []string
	for _, entry := range lookup(args[1] + "." + set) {
		expanded = append(expanded, strings.Fields(entry)...)
	}
	if len(expanded) == 0 {
		return args
	}

	return append(args[:idx:idx], append(expanded, args[idx:]...)...)
}

// deduplicateFlags keeps only the last occurrence of each flag so config
// sets can be overridden on the command line. A flag followed by an arg that
// is not itself a flag is taken to carry that arg as its value. Everything
// after "--" is positional.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	type group struct {
		name string
		args []string
	}

	var groups []group
	last := map[string]int{}
	for i := 2; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			groups = append(groups, group{args: args[i:]})
			break
		}
		if !strings.HasPrefix(a, "-") || a == "-" {
			groups = append(groups, group{args: []string{a}})
			continue
		}

		name, _, hasValue := strings.Cut(a, "=")
		g := group{name: name, args: []string{a}}
		if !hasValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			g.args = append(g.args, args[i+1])
			i++
		}
		if !repeatable[name] {
			last[name] = len(groups)
		}
		groups = append(groups, g)
	}

	result := append([]string{}, args[:2]...)
	for i, g := range groups {
		if idx, ok := last[g.name]; ok && g.name != "" && idx != i {
			continue
		}
		result = append(result, g.args...)
	}
	return result
}
