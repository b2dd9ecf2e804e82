// Package main is the command-line front end of the expression pipeline.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agenthands/calcvm/pkg/calc"
	"github.com/agenthands/calcvm/pkg/compiler/ast"
)

var rootCmd = &cobra.Command{
	Use:   "calcvm [expression]",
	Short: "Evaluate an arithmetic expression through a tree walker and a bytecode VM",
	Long: `calcvm evaluates one arithmetic expression (+ - * / % ^, unary + -,
parentheses) through two independent paths, a tree-walking evaluator and
a compiled stack VM, and prints the agreed result.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringP("eval", "e", "", "expression to evaluate")
	rootCmd.Flags().StringP("ast", "a", "", "print the tree before the result: sexpr or json")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	source, _ := cmd.Flags().GetString("eval")
	if source == "" && len(args) > 0 {
		source = args[0]
	}

	res, err := calc.Eval(source)
	if errors.Is(err, calc.ErrEmptyExpression) {
		// Missing input is reported but is not a failure.
		fmt.Fprintln(cmd.ErrOrStderr(), "calcvm: no expression given")
		return nil
	}
	if err != nil {
		return err
	}

	if format, _ := cmd.Flags().GetString("ast"); format != "" {
		dump, err := renderTree(res.Tree, format)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), dump)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%.15g\n", res.Value)
	return nil
}

func renderTree(tree ast.Node, format string) (string, error) {
	switch format {
	case "sexpr":
		return ast.SExpr(tree), nil
	case "json":
		out, err := ast.JSON(tree)
		if err != nil {
			return "", err
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("unknown ast format %q (want sexpr or json)", format)
	}
}
