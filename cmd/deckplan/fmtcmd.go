package main

import (
	"github.com/scott-cotton/cli"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range filesOrStdin(args) {
		doc, err := loadDoc(arg)
		if err != nil {
			return err
		}
		if err := writeResult(cfg.MainConfig, cc, arg, doc.Format()); err != nil {
			return err
		}
	}
	return nil
}
