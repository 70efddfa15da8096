package main

import (
	"fmt"
	"strings"

	"github.com/tomlkeep/go-tomlkeep/encode"
	"github.com/tomlkeep/go-tomlkeep/key"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/scott-cotton/cli"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no key paths given", cli.ErrUsage)
	}
	for _, arg := range args {
		ks, err := key.ParsePath(arg)
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", arg, err)
		}
		for i := range ks {
			ks[i].Fmt()
		}
		b := &strings.Builder{}
		if err := encode.KeyPath(b, ks); err != nil {
			return err
		}
		if cfg.Diff {
			diffCfg := diffpatch.New()
			diffs := diffCfg.DiffMain(arg, b.String(), false)
			fmt.Fprintln(cc.Out, diffCfg.DiffPrettyText(diffs))
			continue
		}
		if err := encode.KeyPath(cc.Out, ks, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}
