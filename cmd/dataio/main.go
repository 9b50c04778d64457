package main

import (
	"context"

	"github.com/scott-cotton/cli"

	_ "github.com/dataio-format/go-dataio/codec/cborcodec"
	_ "github.com/dataio-format/go-dataio/codec/jsoncodec"
	_ "github.com/dataio-format/go-dataio/codec/yamlcodec"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
