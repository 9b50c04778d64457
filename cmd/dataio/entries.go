package main

import (
	"context"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/dataio-format/go-dataio/storage"
)

func entries(cfg *EntriesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Entries.Parse(cc, args)
	if err != nil {
		cfg.Entries.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path := "."
	if len(args) > 1 {
		return fmt.Errorf("%w: entries takes at most one path", cli.ErrUsage)
	}
	if len(args) == 1 {
		path = args[0]
	}
	loc := storage.NewFS(cfg.Base)
	seq, err := loc.Entries(context.Background(), path)
	if err != nil {
		return err
	}
	for name := range seq {
		fmt.Fprintln(cc.Out, name)
	}
	return nil
}
