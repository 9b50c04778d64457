// Package debug provides env-gated debug logging. Each area is switched on
// with a DATAIO_DEBUG_* boolean environment variable; everything is off by
// default and the library stays silent.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Load  bool
	Path  bool
	Query bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("DATAIO_DEBUG_LOAD")
	d.Path = boolEnv("DATAIO_DEBUG_PATH")
	d.Query = boolEnv("DATAIO_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool  { return d.Load }
func Path() bool  { return d.Path }
func Query() bool { return d.Query }

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func JSON(v any) string {
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("<err: %s>", err)
	}
	return string(d)
}
