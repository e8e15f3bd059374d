package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/slidecraft/deckplan/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path argument", cli.ErrUsage)
	}
	path, err := ir.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, arg := range filesOrStdin(args[1:]) {
		doc, err := loadDoc(arg)
		if err != nil {
			return err
		}
		node := doc.Get(path)
		if node == nil {
			// absent: print nothing and don't yell either
			continue
		}
		if err := printNode(cc.Out, node); err != nil {
			return err
		}
	}
	return nil
}
