// Command tinynfa compiles restricted regular expressions into
// fixed-capacity Thompson NFAs and renders or embeds the result.
//
//	tinynfa dot '(a|b)c*'           Graphviz rendering on stdout
//	tinynfa dump 'a*'               plain-text state table
//	tinynfa gen -i Digits '0|1'     generated Go source
//
// Arena capacities come from flags or a YAML config file; flags win.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/coregx/tinynfa/gen"
	"github.com/coregx/tinynfa/nfa"
)

// fileConfig is the YAML shape of --config files.
type fileConfig struct {
	MaxStates      int `yaml:"max_states"`
	MaxTransitions int `yaml:"max_transitions"`
}

type app struct {
	configPath     string
	maxStates      int
	maxTransitions int
}

// arenaConfig resolves the capacities once at startup: defaults, then
// the config file, then explicit flags.
func (a *app) arenaConfig(cmd *cobra.Command) (nfa.Config, error) {
	cfg := nfa.DefaultConfig()
	if a.configPath != "" {
		data, err := os.ReadFile(a.configPath)
		if err != nil {
			return nfa.Config{}, fmt.Errorf("read config: %w", err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nfa.Config{}, fmt.Errorf("parse config %s: %w", a.configPath, err)
		}
		if fc.MaxStates != 0 {
			cfg.MaxStates = fc.MaxStates
		}
		if fc.MaxTransitions != 0 {
			cfg.MaxTransitions = fc.MaxTransitions
		}
	}
	if cmd.Flags().Changed("max-states") {
		cfg.MaxStates = a.maxStates
	}
	if cmd.Flags().Changed("max-transitions") {
		cfg.MaxTransitions = a.maxTransitions
	}
	return cfg, cfg.Validate()
}

// compile wraps nfa compilation with the caret diagnostic on stderr.
func (a *app) compile(cmd *cobra.Command, pattern string) (*nfa.NFA, error) {
	cfg, err := a.arenaConfig(cmd)
	if err != nil {
		return nil, err
	}
	n, err := nfa.CompileWithConfig(pattern, cfg)
	if err != nil {
		var pe *nfa.ParseError
		if errors.As(err, &pe) {
			fmt.Fprint(cmd.ErrOrStderr(), pe.Indicate())
		}
		return nil, err
	}
	return n, nil
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "tinynfa",
		Short:         "compile restricted regexes into fixed-arena Thompson NFAs",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML file with max_states / max_transitions")
	pf.IntVar(&a.maxStates, "max-states", nfa.DefaultMaxStates, "arena state capacity")
	pf.IntVar(&a.maxTransitions, "max-transitions", nfa.DefaultMaxTransitions, "per-state transition capacity")

	root.AddCommand(newDotCmd(a), newDumpCmd(a), newGenCmd(a))
	return root
}

func newDotCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "dot <pattern>",
		Short: "render the compiled automaton as Graphviz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.compile(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "digraph {")
			if err := nfa.WriteDot(out, n, name); err != nil {
				return err
			}
			fmt.Fprintln(out, "}")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "g", "subgraph name and node prefix")
	return cmd
}

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <pattern>",
		Short: "print the compiled automaton's state table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.compile(cmd, args[0])
			if err != nil {
				return err
			}
			return nfa.Dump(cmd.OutOrStdout(), n)
		},
	}
}

func newGenCmd(a *app) *cobra.Command {
	var (
		pkgName string
		ident   string
		output  string
	)
	cmd := &cobra.Command{
		Use:   "gen <pattern>",
		Short: "emit Go source embedding the compiled automaton",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.compile(cmd, args[0])
			if err != nil {
				return err
			}
			src, err := gen.Source(n, pkgName, ident)
			if err != nil {
				return err
			}
			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), src)
				return nil
			}
			return os.WriteFile(output, []byte(src), 0o644)
		},
	}
	cmd.Flags().StringVarP(&pkgName, "package", "p", "main", "package name for the generated file")
	cmd.Flags().StringVarP(&ident, "ident", "i", "Pattern", "identifier suffix for the generated constructor")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
