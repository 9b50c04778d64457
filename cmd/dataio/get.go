package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path argument", cli.ErrUsage)
	}
	path := args[0]
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		d, in, err := getDocFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		switch {
		case cfg.Has:
			fmt.Fprintln(cc.Out, d.Has(path))
		case cfg.Size:
			fmt.Fprintln(cc.Out, d.ListSize(path))
		default:
			sub, ok := d.SubData(path)
			if !ok {
				return fmt.Errorf("no value at %q in %s", path, file)
			}
			if err := writeDoc(cfg.MainConfig, cc, sub, in); err != nil {
				return err
			}
		}
	}
	return nil
}
