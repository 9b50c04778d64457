package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/dataio-format/go-dataio/codec/jsoncodec"
	"github.com/dataio-format/go-dataio/query"
	"github.com/dataio-format/go-dataio/tree"
)

func queryCmd(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	src := args[0]
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	pretty := &jsoncodec.JSON{Indent: "  "}
	for i, file := range files {
		d, _, err := getDocFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		out, err := query.Eval(d, src)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", file, err)
		}
		if len(files) > 1 {
			label := file
			if cfg.colorEnabled() {
				label = color.CyanString(file)
			}
			if i > 0 {
				fmt.Fprintln(cc.Out)
			}
			fmt.Fprintf(cc.Out, "%s:\n", label)
		}
		n, err := tree.FromAny(out)
		if err != nil {
			fmt.Fprintln(cc.Out, out)
			continue
		}
		enc, err := pretty.Encode(n)
		if err != nil {
			return err
		}
		if _, err := cc.Out.Write(enc); err != nil {
			return err
		}
		if err := writeNL(cc, enc); err != nil {
			return err
		}
	}
	return nil
}
