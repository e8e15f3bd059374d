package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/slidecraft/deckplan/ir"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a path and a value", cli.ErrUsage)
	}
	path, err := ir.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	v, err := parseValue(cfg, args[1])
	if err != nil {
		return err
	}
	for _, arg := range filesOrStdin(args[2:]) {
		doc, err := loadDoc(arg)
		if err != nil {
			return err
		}
		if err := doc.Set(path, v.Clone()); err != nil {
			return fmt.Errorf("%s: %w", displayName(arg), err)
		}
		if err := writeResult(cfg.MainConfig, cc, arg, doc.Serialize()); err != nil {
			return err
		}
	}
	return nil
}

// parseValue reads the value argument in yaml syntax, so "3", "true",
// "[a, b]" and "{x: 1}" all do what they look like; -s skips that and
// takes the text as a string.
func parseValue(cfg *SetConfig, arg string) (*ir.Node, error) {
	if cfg.String {
		return ir.FromString(arg), nil
	}
	var v any
	if err := yaml.Unmarshal([]byte(arg), &v); err != nil {
		return nil, fmt.Errorf("%w: bad value %q: %w", cli.ErrUsage, arg, err)
	}
	node, err := ir.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: bad value %q: %w", cli.ErrUsage, arg, err)
	}
	return node, nil
}
