package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/slidecraft/deckplan/ir"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files", cli.ErrUsage)
	}
	if cfg.Semantic {
		return semanticDiff(cfg, cc, args[0], args[1])
	}
	a, err := readArg(args[0])
	if err != nil {
		return err
	}
	b, err := readArg(args[1])
	if err != nil {
		return err
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(string(a), string(b), true))
	if err := writeDiffs(cc.Out, diffs, useColor(cfg, cc.Out)); err != nil {
		return err
	}
	for _, df := range diffs {
		if df.Type != diffpatch.DiffEqual {
			return cli.ExitCodeErr(1)
		}
	}
	return nil
}

func semanticDiff(cfg *DiffConfig, cc *cli.Context, a, b string) error {
	docA, err := loadDoc(a)
	if err != nil {
		return err
	}
	docB, err := loadDoc(b)
	if err != nil {
		return err
	}
	if ir.Equal(docA.Root(), docB.Root()) {
		return nil
	}
	fmt.Fprintf(cc.Out, "%s and %s differ\n", displayName(a), displayName(b))
	return cli.ExitCodeErr(1)
}

func useColor(cfg *DiffConfig, w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func writeDiffs(w io.Writer, diffs []diffpatch.Diff, colored bool) error {
	for _, df := range diffs {
		var out string
		switch df.Type {
		case diffpatch.DiffEqual:
			out = df.Text
		case diffpatch.DiffInsert:
			if colored {
				out = color.GreenString("%s", df.Text)
			} else {
				out = "{+" + df.Text + "+}"
			}
		case diffpatch.DiffDelete:
			if colored {
				out = color.RedString("%s", df.Text)
			} else {
				out = "[-" + df.Text + "-]"
			}
		}
		if _, err := io.WriteString(w, out); err != nil {
			return err
		}
	}
	return nil
}
