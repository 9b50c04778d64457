package main

import (
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"

	dataio "github.com/dataio-format/go-dataio"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Null {
		if len(args) < 1 {
			return fmt.Errorf("%w: set -null requires a path", cli.ErrUsage)
		}
	} else if len(args) < 2 {
		return fmt.Errorf("%w: set requires a path and a value", cli.ErrUsage)
	}
	path := args[0]
	file := "-"
	rest := args[1:]
	if !cfg.Null {
		rest = args[2:]
	}
	if len(rest) > 1 {
		return fmt.Errorf("%w: set edits at most one document", cli.ErrUsage)
	}
	if len(rest) == 1 {
		file = rest[0]
	}
	d, in, err := getDocFile(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	var value string
	if !cfg.Null {
		value = args[1]
	}
	if err := setValue(cfg, d, path, value); err != nil {
		return err
	}
	return writeDoc(cfg.MainConfig, cc, d, in)
}

// setValue types the command-line value the way scalars read from a
// document are typed: booleans and numbers are recognized unless -s forces
// a string.
func setValue(cfg *SetConfig, d *dataio.Data, path, v string) error {
	if cfg.Null {
		return d.SetNull(path)
	}
	if cfg.String {
		return d.SetString(v, path)
	}
	switch v {
	case "true":
		return d.SetBool(true, path)
	case "false":
		return d.SetBool(false, path)
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return d.SetNumber(f, path)
	}
	return d.SetString(v, path)
}
