package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/slidecraft/deckplan/ir"
	"github.com/slidecraft/deckplan/plan"
)

func slideLs(cfg *SlideLsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Ls.Parse(cc, args)
	if err != nil {
		cfg.Ls.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var program *vm.Program
	if cfg.Where != "" {
		if program, err = expr.Compile(cfg.Where); err != nil {
			return fmt.Errorf("%w: bad -where expression: %w", cli.ErrUsage, err)
		}
	}
	for _, arg := range filesOrStdin(args) {
		doc, err := loadDoc(arg)
		if err != nil {
			return err
		}
		items, err := plan.Slides(doc, cfg.slideOpts()...).Items()
		if err != nil {
			return fmt.Errorf("%s: %w", displayName(arg), err)
		}
		out := ir.NewArray()
		for i, slide := range items {
			if program != nil {
				keep, err := evalWhere(program, slide, i)
				if err != nil {
					return fmt.Errorf("%s: -where: %w", displayName(arg), err)
				}
				if !keep {
					continue
				}
			}
			out.Append(slide.Clone())
		}
		if err := printNode(cc.Out, out); err != nil {
			return err
		}
	}
	return nil
}

func evalWhere(program *vm.Program, slide *ir.Node, i int) (bool, error) {
	env := map[string]any{
		"slide": ir.ToAny(slide),
		"index": i,
	}
	res, err := vm.Run(program, env)
	if err != nil {
		return false, err
	}
	keep, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("expression yields %T, want bool", res)
	}
	return keep, nil
}

func slideInsert(cfg *SlideInsertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Insert.Parse(cc, args)
	if err != nil {
		cfg.Insert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	slide := ir.NewObject()
	if len(args) > 0 {
		var v any
		if err := yaml.Unmarshal([]byte(args[0]), &v); err != nil {
			return fmt.Errorf("%w: bad slide %q: %w", cli.ErrUsage, args[0], err)
		}
		if slide, err = ir.FromAny(v); err != nil {
			return fmt.Errorf("%w: bad slide %q: %w", cli.ErrUsage, args[0], err)
		}
		args = args[1:]
	}
	for _, arg := range filesOrStdin(args) {
		doc, err := loadDoc(arg)
		if err != nil {
			return err
		}
		sl := plan.Slides(doc, cfg.slideOpts()...)
		at, err := sl.Len()
		if err != nil {
			return fmt.Errorf("%s: %w", displayName(arg), err)
		}
		if cfg.At > 0 {
			at = cfg.At - 1
		}
		if err := sl.Insert(at, slide.Clone()); err != nil {
			return fmt.Errorf("%s: %w", displayName(arg), err)
		}
		if err := writeResult(cfg.MainConfig, cc, arg, doc.Serialize()); err != nil {
			return err
		}
	}
	return nil
}

func slideRm(cfg *SlideRmConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rm.Parse(cc, args)
	if err != nil {
		cfg.Rm.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: rm requires a slide number", cli.ErrUsage)
	}
	n, err := parseIndex(args[0], "slide number")
	if err != nil {
		return err
	}
	for _, arg := range filesOrStdin(args[1:]) {
		doc, err := loadDoc(arg)
		if err != nil {
			return err
		}
		if err := plan.Slides(doc, cfg.slideOpts()...).Delete(n - 1); err != nil {
			return fmt.Errorf("%s: %w", displayName(arg), err)
		}
		if err := writeResult(cfg.MainConfig, cc, arg, doc.Serialize()); err != nil {
			return err
		}
	}
	return nil
}

func slideMv(cfg *SlideMvConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Mv.Parse(cc, args)
	if err != nil {
		cfg.Mv.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: mv requires from and to", cli.ErrUsage)
	}
	from, err := parseIndex(args[0], "from")
	if err != nil {
		return err
	}
	to, err := parseIndex(args[1], "to")
	if err != nil {
		return err
	}
	var mvOpts []plan.MoveOption
	if cfg.Group != "" {
		mvOpts = append(mvOpts, plan.MoveToGroup(cfg.Group))
	}
	for _, arg := range filesOrStdin(args[2:]) {
		doc, err := loadDoc(arg)
		if err != nil {
			return err
		}
		out, err := plan.Slides(doc, cfg.slideOpts()...).Move(from-1, to-1, mvOpts...)
		if err != nil {
			return fmt.Errorf("%s: %w", displayName(arg), err)
		}
		if err := writeResult(cfg.MainConfig, cc, arg, out); err != nil {
			return err
		}
	}
	return nil
}

func slideRenumber(cfg *SlideRenumberConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Renumber.Parse(cc, args)
	if err != nil {
		cfg.Renumber.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range filesOrStdin(args) {
		doc, err := loadDoc(arg)
		if err != nil {
			return err
		}
		if err := plan.Slides(doc, cfg.slideOpts()...).Renumber(); err != nil {
			return fmt.Errorf("%s: %w", displayName(arg), err)
		}
		if err := writeResult(cfg.MainConfig, cc, arg, doc.Serialize()); err != nil {
			return err
		}
	}
	return nil
}
