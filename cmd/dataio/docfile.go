package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	dataio "github.com/dataio-format/go-dataio"
	"github.com/dataio-format/go-dataio/codec"
)

// getDocFile reads and decodes one document argument, "-" meaning stdin.
func getDocFile(cfg *MainConfig, cc *cli.Context, path string) (*dataio.Data, codec.Codec, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	c, err := cfg.inCodecFor(path)
	if err != nil {
		return nil, nil, err
	}
	d, err := dataio.Decode(c, raw)
	if err != nil {
		return nil, nil, fmt.Errorf("error decoding %q: %w", path, err)
	}
	return d, c, nil
}

func writeDoc(cfg *MainConfig, cc *cli.Context, d *dataio.Data, in codec.Codec) error {
	out, err := d.Encode(cfg.outCodecFor(in))
	if err != nil {
		return err
	}
	if _, err := cc.Out.Write(out); err != nil {
		return err
	}
	return writeNL(cc, out)
}

func writeNL(cc *cli.Context, out []byte) error {
	if len(out) > 0 && out[len(out)-1] == '\n' {
		return nil
	}
	_, err := cc.Out.Write([]byte("\n"))
	return err
}
