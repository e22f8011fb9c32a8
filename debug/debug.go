package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Diff    bool
	Render  bool
	Convert bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("TREESCOPE_DEBUG_DIFF")
	d.Render = boolEnv("TREESCOPE_DEBUG_RENDER")
	d.Convert = boolEnv("TREESCOPE_DEBUG_CONVERT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func Render() bool {
	return d.Render
}
func Convert() bool {
	return d.Convert
}
