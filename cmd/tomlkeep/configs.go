package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tomlkeep/go-tomlkeep/encode"
	"github.com/tomlkeep/go-tomlkeep/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colorize text output'"`

	T bool `cli:"name=t aliases=text desc='output as text'"`
	J bool `cli:"name=j aliases=json desc='output as json'"`
	Y bool `cli:"name=y aliases=yaml desc='output as yaml'"`

	OutFormat *format.Format
	ExtFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) outFormat() format.Format {
	var fmat format.Format
	if cfg.ExtFormat != nil {
		fmat = *cfg.ExtFormat
	}
	switch {
	case cfg.T:
		fmat = format.TextFormat
	case cfg.J:
		fmat = format.JSONFormat
	case cfg.Y:
		fmat = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Color {
		res = append(res, encode.WithColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.WithColors(encode.NewColors()))
	}
	return res
}

// extFormat maps an output file extension to its format, so `-o x.json`
// implies json output without an explicit format flag.
func extFormat(name string) *format.Format {
	ext := filepath.Ext(name)
	for _, f := range format.AllFormats() {
		if f.Suffix() == ext {
			return &f
		}
	}
	return nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	cfg.ExtFormat = extFormat(a)
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Diff bool `cli:"name=d desc='show a character diff against the input'"`

	Fmt *cli.Command
}
