package main

import (
	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		d, in, err := getDocFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if err := writeDoc(cfg.MainConfig, cc, d, in); err != nil {
			return err
		}
	}
	return nil
}
