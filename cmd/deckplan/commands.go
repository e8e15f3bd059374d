package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "deckplan").
		WithSynopsis("deckplan [opts] command [opts]").
		WithDescription("deckplan edits slide deck plan files, keeping every line it does not touch byte for byte.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return deckplanMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			SetCommand(cfg),
			DelCommand(cfg),
			SlideCommand(cfg),
			FmtCommand(cfg),
			ExportCommand(cfg),
			PatchCommand(cfg),
			DiffCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("print the value at a path, nothing when absent").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("set").
		WithSynopsis("set [-s] <path> <value> [files]").
		WithDescription("write a value at a path, creating intermediate mappings").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func DelCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DelConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("del").
		WithAliases("rm").
		WithSynopsis("del <path> [files]").
		WithDescription("delete the entry at a path; absent paths are a no-op").
		WithRun(func(cc *cli.Context, args []string) error {
			return del(cfg, cc, args)
		})
	cfg.Del = cmd
	return cmd
}

func SlideCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SlideConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommandAt(&cfg.Slide, "slide").
		WithAliases("s", "sl").
		WithSynopsis("slide [opts] <subcommand>").
		WithDescription("list and rearrange the slides of a plan").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return slideMain(cfg, cc, args)
		}).
		WithSubs(
			SlideLsCommand(cfg),
			SlideInsertCommand(cfg),
			SlideRmCommand(cfg),
			SlideMvCommand(cfg),
			SlideRenumberCommand(cfg))
	return cmd
}

func SlideLsCommand(slideCfg *SlideConfig) *cli.Command {
	cfg := &SlideLsConfig{SlideConfig: slideCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("ls").
		WithAliases("l", "list").
		WithSynopsis("slide ls [-where expr] [files]").
		WithDescription("list slides, optionally filtered by an expression over 'slide' and 'index'").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return slideLs(cfg, cc, args)
		})
	cfg.Ls = cmd
	return cmd
}

func SlideInsertCommand(slideCfg *SlideConfig) *cli.Command {
	cfg := &SlideInsertConfig{SlideConfig: slideCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("insert").
		WithAliases("i", "ins").
		WithSynopsis("slide insert [-at n] [slide] [files]").
		WithDescription("insert a slide (a mapping in yaml syntax, empty by default) and renumber").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return slideInsert(cfg, cc, args)
		})
	cfg.Insert = cmd
	return cmd
}

func SlideRmCommand(slideCfg *SlideConfig) *cli.Command {
	cfg := &SlideRmConfig{SlideConfig: slideCfg}
	cmd := cli.NewCommand("rm").
		WithSynopsis("slide rm <n> [files]").
		WithDescription("remove slide n (1-based) and renumber").
		WithRun(func(cc *cli.Context, args []string) error {
			return slideRm(cfg, cc, args)
		})
	cfg.Rm = cmd
	return cmd
}

func SlideMvCommand(slideCfg *SlideConfig) *cli.Command {
	cfg := &SlideMvConfig{SlideConfig: slideCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("mv").
		WithAliases("move").
		WithSynopsis("slide mv [-group g] <from> <to> [files]").
		WithDescription("move slide from (1-based) to insertion point to, then renumber").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return slideMv(cfg, cc, args)
		})
	cfg.Mv = cmd
	return cmd
}

func SlideRenumberCommand(slideCfg *SlideConfig) *cli.Command {
	cfg := &SlideRenumberConfig{SlideConfig: slideCfg}
	cmd := cli.NewCommand("renumber").
		WithAliases("ren").
		WithSynopsis("slide renumber [files]").
		WithDescription("rewrite every slide's position key to its 1-based index").
		WithRun(func(cc *cli.Context, args []string) error {
			return slideRenumber(cfg, cc, args)
		})
	cfg.Renumber = cmd
	return cmd
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("fmt").
		WithSynopsis("fmt [files]").
		WithDescription("normalize spacing, keeping comments and value spellings").
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtRun(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("export").
		WithAliases("x").
		WithSynopsis("export [-json|-yaml] [files]").
		WithDescription("render the plan as plain yaml or json, comments dropped").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return export(cfg, cc, args)
		})
	cfg.Export = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch [-s] <patch> [files]").
		WithDescription("apply an RFC 6902 JSON patch, keeping untouched lines").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff [-semantic] <a> <b>").
		WithDescription("diff two plan files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
