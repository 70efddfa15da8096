package main

import (
	"fmt"
	"io"

	"github.com/tomlkeep/go-tomlkeep/encode"
	"github.com/tomlkeep/go-tomlkeep/format"
	"github.com/tomlkeep/go-tomlkeep/key"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

// segment is the serializable view of one parsed key.
type segment struct {
	Key    string `json:"key" yaml:"key"`
	Repr   string `json:"repr" yaml:"repr"`
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
}

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
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
		if err := writeKeys(cfg, cc.Out, ks); err != nil {
			return err
		}
	}
	return nil
}

func writeKeys(cfg *KeysConfig, w io.Writer, ks []key.Key) error {
	switch cfg.outFormat() {
	case format.JSONFormat:
		d, err := json.MarshalIndent(segments(ks), "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(d, '\n'))
		return err
	case format.YAMLFormat:
		d, err := yaml.Marshal(segments(ks))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		if err := encode.KeyPath(w, ks, cfg.encOpts(w)...); err != nil {
			return err
		}
		_, err := w.Write([]byte("\n"))
		return err
	}
}

func segments(ks []key.Key) []segment {
	res := make([]segment, len(ks))
	for i := range ks {
		k := &ks[i]
		s := segment{
			Key:  k.Get(),
			Repr: k.DisplayRepr(),
		}
		d := k.Decor()
		if p := d.Prefix(); p != nil {
			s.Prefix, _ = p.Str()
		}
		if sf := d.Suffix(); sf != nil {
			s.Suffix, _ = sf.Str()
		}
		res[i] = s
	}
	return res
}
