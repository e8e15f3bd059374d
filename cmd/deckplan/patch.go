package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	patchText := []byte(args[0])
	if !cfg.String {
		if patchText, err = readArg(args[0]); err != nil {
			return err
		}
	}
	for _, arg := range filesOrStdin(args[1:]) {
		doc, err := loadDoc(arg)
		if err != nil {
			return err
		}
		if err := doc.ApplyPatch(patchText); err != nil {
			return fmt.Errorf("%s: %w", displayName(arg), err)
		}
		if err := writeResult(cfg.MainConfig, cc, arg, doc.Serialize()); err != nil {
			return err
		}
	}
	return nil
}
