package maincmd_test

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/mna/mainer"

	"github.com/lox-lang/loxwalk/internal/filetest"
	"github.com/lox-lang/loxwalk/internal/maincmd"
)

var testUpdateRunTests = flag.Bool("test.update-run-tests", false, "If set, replace expected run test results with actual results.")

// TestRun runs every testdata/in/*.lox file through the "run" command and
// diffs its stdout/stderr against the matching testdata/out golden files,
// exercising the scanner, parser, resolver and evaluator together exactly
// the way a user invoking the binary would.
func TestRun(t *testing.T) {
	ctx := context.Background()
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".lox") {
		t.Run(fi.Name(), func(t *testing.T) {
			var buf, ebuf bytes.Buffer
			stdio := mainer.Stdio{Stdout: &buf, Stderr: &ebuf}

			var c maincmd.Cmd
			_ = c.Run(ctx, stdio, []string{filepath.Join(srcDir, fi.Name())})

			filetest.DiffOutput(t, fi, buf.String(), resultDir, testUpdateRunTests)
			filetest.DiffErrors(t, fi, ebuf.String(), resultDir, testUpdateRunTests)
		})
	}
}
