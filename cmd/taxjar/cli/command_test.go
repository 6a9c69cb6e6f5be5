// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "taxjar",
		Subcommands: []*Command{
			{
				Name: "nexus",
				Run: func(args []string) error {
					called = "nexus"
					return nil
				},
			},
			{
				Name: "categories",
				Run: func(args []string) error {
					called = "categories"
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"categories"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "categories" {
		t.Errorf("dispatched to %q, want %q", called, "categories")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "taxjar",
		Subcommands: []*Command{
			{
				Name: "orders",
				Subcommands: []*Command{
					{
						Name: "get",
						Run: func(args []string) error {
							called = "orders get"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute([]string{"orders", "get", "ORDER-123"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "orders get" {
		t.Errorf("dispatched to %q, want %q", called, "orders get")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "ORDER-123" {
		t.Errorf("args = %v, want [ORDER-123]", receivedArgs)
	}
}

func TestCommand_Execute_UnknownCommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "taxjar",
		Subcommands: []*Command{
			{Name: "orders", Run: func([]string) error { return nil }},
			{Name: "refunds", Run: func([]string) error { return nil }},
		},
	}

	err := root.Execute([]string{"odrers"})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !IsUsage(err) {
		t.Errorf("error is %T, want usage error", err)
	}
	if !strings.Contains(err.Error(), `"orders"`) {
		t.Errorf("error should suggest orders, got: %v", err)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var fromDate string

	command := &Command{
		Name: "list",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.StringVar(&fromDate, "from-date", "", "start date")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	if err := command.Execute([]string{"--from-date", "2026/01/01"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if fromDate != "2026/01/01" {
		t.Errorf("from-date = %q, want 2026/01/01", fromDate)
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "calculate",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("calculate", pflag.ContinueOnError)
			flagSet.String("amount", "", "order amount")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--ammount", "100"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), "--amount") {
		t.Errorf("error should suggest --amount, got: %v", err)
	}
}

func TestCommand_Execute_GroupWithoutSubcommandFails(t *testing.T) {
	root := &Command{
		Name: "taxjar",
		Subcommands: []*Command{
			{Name: "orders", Run: func([]string) error { return nil }},
		},
	}

	if err := root.Execute(nil); err == nil {
		t.Fatal("expected error when no subcommand given")
	}
}

func TestCommand_FullName(t *testing.T) {
	root := &Command{Name: "taxjar"}
	group := &Command{Name: "orders", parent: root}
	leaf := &Command{Name: "get", parent: group}

	if got := leaf.fullName(); got != "taxjar orders get" {
		t.Errorf("fullName() = %q, want %q", got, "taxjar orders get")
	}
}
