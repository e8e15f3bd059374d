package main

import (
	"os"

	"github.com/scott-cotton/cli"

	"github.com/slidecraft/deckplan/plan"
)

type MainConfig struct {
	Write bool `cli:"name=w desc='write results back to the input file'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='treat the value as a raw string'"`

	Set *cli.Command
}

type DelConfig struct {
	*MainConfig

	Del *cli.Command
}

type SlideConfig struct {
	*MainConfig
	Field    string `cli:"name=field desc='slide sequence field (default slides)'"`
	NumKey   string `cli:"name=numberKey desc='per-slide position key (default number)'"`
	GroupKey string `cli:"name=groupKey desc='per-slide group key (default group)'"`

	Slide *cli.Command
}

func (cfg *SlideConfig) slideOpts() []plan.SlideOption {
	var opts []plan.SlideOption
	if cfg.Field != "" {
		opts = append(opts, plan.WithField(cfg.Field))
	}
	if cfg.NumKey != "" {
		opts = append(opts, plan.WithNumberKey(cfg.NumKey))
	}
	if cfg.GroupKey != "" {
		opts = append(opts, plan.WithGroupKey(cfg.GroupKey))
	}
	return opts
}

type SlideLsConfig struct {
	*SlideConfig
	Where string `cli:"name=where desc='keep slides for which this expression is true'"`

	Ls *cli.Command
}

type SlideInsertConfig struct {
	*SlideConfig
	At int `cli:"name=at desc='1-based position of the new slide (default append)'"`

	Insert *cli.Command
}

type SlideRmConfig struct {
	*SlideConfig

	Rm *cli.Command
}

type SlideMvConfig struct {
	*SlideConfig
	Group string `cli:"name=group desc='also assign the moved slide to this group'"`

	Mv *cli.Command
}

type SlideRenumberConfig struct {
	*SlideConfig

	Renumber *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

type ExportConfig struct {
	*MainConfig
	JSON bool `cli:"name=json aliases=j desc='export JSON'"`
	YAML bool `cli:"name=yaml aliases=y desc='export YAML (default)'"`

	Export *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch argument is the patch text itself'"`

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Semantic bool `cli:"name=semantic desc='compare values, ignoring comments and layout'"`
	Color    bool `cli:"name=color desc='force colored output'"`

	Diff *cli.Command
}
