package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/dataio-format/go-dataio/codec"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colorized output'"`

	InCodec  codec.Codec
	OutCodec codec.Codec

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) codecOpt(dst *codec.Codec) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		c, ok := codec.ByName(v)
		if !ok {
			return nil, fmt.Errorf("%w: unknown format %q, have %s",
				cli.ErrUsage, v, strings.Join(codec.Names(), ", "))
		}
		*dst = c
		return v, nil
	})
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

// inCodecFor picks the decoding backend: -I wins, then the file suffix,
// then JSON.
func (cfg *MainConfig) inCodecFor(path string) (codec.Codec, error) {
	if cfg.InCodec != nil {
		return cfg.InCodec, nil
	}
	if ext := filepath.Ext(path); ext != "" {
		if c, ok := codec.BySuffix(ext); ok {
			return c, nil
		}
	}
	c, ok := codec.ByName("json")
	if !ok {
		return nil, fmt.Errorf("no json backend registered")
	}
	return c, nil
}

// outCodecFor picks the encoding backend: -O wins, then the input backend.
func (cfg *MainConfig) outCodecFor(in codec.Codec) codec.Codec {
	if cfg.OutCodec != nil {
		return cfg.OutCodec
	}
	return in
}

func (cfg *MainConfig) colorEnabled() bool {
	return cfg.Color || isatty.IsTerminal(os.Stdout.Fd())
}

type GetConfig struct {
	*MainConfig
	Has  bool `cli:"name=has desc='report presence instead of the value'"`
	Size bool `cli:"name=size desc='report list size instead of the value'"`

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	String bool `cli:"name=s aliases=string desc='treat the value as a string'"`
	Null   bool `cli:"name=null desc='set an explicit null'"`

	Set *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Text bool `cli:"name=text desc='print a textual diff instead of a merge patch'"`

	Diff *cli.Command
}

type EntriesConfig struct {
	*MainConfig
	Base string `cli:"name=base desc='base storage path'"`

	Entries *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}
