package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	dataio "github.com/dataio-format/go-dataio"
	"github.com/dataio-format/go-dataio/codec/jsoncodec"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, _, err := getDocFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, _, err := getDocFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if cfg.Text {
		return textDiff(cfg, cc, a, b)
	}
	patch, err := dataio.Diff(a, b)
	if err != nil {
		return err
	}
	if string(patch) == "{}" {
		return nil
	}
	if _, err := cc.Out.Write(patch); err != nil {
		return err
	}
	if err := writeNL(cc, patch); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func textDiff(cfg *DiffConfig, cc *cli.Context, a, b *dataio.Data) error {
	pretty := &jsoncodec.JSON{Indent: "  "}
	ea, err := a.EncodeString(pretty)
	if err != nil {
		return err
	}
	eb, err := b.EncodeString(pretty)
	if err != nil {
		return err
	}
	if ea == eb {
		return nil
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(ea, eb, false)
	if cfg.colorEnabled() {
		fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	} else {
		patches := dmp.PatchMake(ea, diffs)
		fmt.Fprint(cc.Out, dmp.PatchToText(patches))
	}
	return cli.ExitCodeErr(1)
}
