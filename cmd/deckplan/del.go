package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/slidecraft/deckplan/ir"
)

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		cfg.Del.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: del requires a path argument", cli.ErrUsage)
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
		doc.Delete(path)
		if err := writeResult(cfg.MainConfig, cc, arg, doc.Serialize()); err != nil {
			return err
		}
	}
	return nil
}
