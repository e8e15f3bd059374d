package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		cfg.Export.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.JSON && cfg.YAML {
		return fmt.Errorf("%w: -json and -yaml are mutually exclusive", cli.ErrUsage)
	}
	for _, arg := range filesOrStdin(args) {
		doc, err := loadDoc(arg)
		if err != nil {
			return err
		}
		var out []byte
		if cfg.JSON {
			out, err = doc.ExportJSON()
			out = append(out, '\n')
		} else {
			out, err = doc.ExportYAML()
		}
		if err != nil {
			return fmt.Errorf("%s: %w", displayName(arg), err)
		}
		if _, err := cc.Out.Write(out); err != nil {
			return err
		}
	}
	return nil
}
