package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/scott-cotton/cli"

	"github.com/slidecraft/deckplan/encode"
	"github.com/slidecraft/deckplan/ir"
	"github.com/slidecraft/deckplan/parse"
	"github.com/slidecraft/deckplan/plan"
)

func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(arg)
}

func displayName(arg string) string {
	if arg == "-" {
		return "stdin"
	}
	return arg
}

func loadDoc(arg string) (*plan.Document, error) {
	d, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	return plan.Parse(d, parse.Filename(displayName(arg)))
}

// writeResult sends edited plan text to -o/stdout, or back to the
// input file under -w.
func writeResult(cfg *MainConfig, cc *cli.Context, arg string, out []byte) error {
	if cfg.Write && arg != "-" {
		return os.WriteFile(arg, out, 0644)
	}
	_, err := cc.Out.Write(out)
	return err
}

// printNode renders a node canonically, without the comments hanging
// over it in its document.
func printNode(w io.Writer, n *ir.Node) error {
	c := n.Clone()
	c.Comment = nil
	_, err := w.Write(encode.Encode(c))
	return err
}

// filesOrStdin defaults an empty file list to stdin.
func filesOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func parseIndex(arg, what string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number, got %q", cli.ErrUsage, what, arg)
	}
	return n, nil
}
