package cmd

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/render"
)

// run executes a fresh command tree and returns stdout and the error.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

const demoOutput = `Example matrix
[1.0, 2.0, 3.0]
[4.0, 5.0, 6.0]
[7.0, 8.0, 9.0]
Row 1: [4.0, 5.0, 6.0]
1x1: 5.0
[1.0, 2.0, 3.0]
[4.0, 5.2, 6.0]
[7.0, 8.0, 9.0]
Example 2
[1.0, 2.0, 3.0]
[4.0, 5.0, 6.0]
[7.0, 8.0, 9.0]
Row 1: [4.0, 5.0, 6.0]
1x2: 6.0
[1.0, 2.0, 3.0]
[4.0, 5.1, 6.0]
[7.0, 8.0, 9.0]
`

func TestDemo(t *testing.T) {
	out, err := run(t, "demo")
	require.NoError(t, err)
	require.Equal(t, demoOutput, out)
}

func TestDemoDebugLogging(t *testing.T) {
	out, err := run(t, "demo", "--log-level", "debug")
	require.NoError(t, err)
	require.Equal(t, demoOutput, out, "logs go to stderr, not to the command output")
}

// brokenWriter accepts n writes, then fails every one after.
type brokenWriter struct{ n int }

var errBroken = errors.New("broken pipe")

func (w *brokenWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errBroken
	}
	w.n--

	return len(p), nil
}

// TestDemoReportsWriteErrors fails the writer at every line of the demo in
// turn; each failure must surface instead of being dropped.
func TestDemoReportsWriteErrors(t *testing.T) {
	const lines = 9 // per layout
	p := render.New()
	for n := 0; n < lines; n++ {
		err := denseDemo(&brokenWriter{n: n}, p, zap.NewNop())
		require.ErrorIs(t, err, errBroken, "dense, failing write %d", n)

		err = gridDemo(&brokenWriter{n: n}, p, zap.NewNop())
		require.ErrorIs(t, err, errBroken, "grid, failing write %d", n)
	}
	require.NoError(t, denseDemo(&brokenWriter{n: lines}, p, zap.NewNop()))
	require.NoError(t, gridDemo(&brokenWriter{n: lines}, p, zap.NewNop()))

	root := NewRootCmd()
	root.SetOut(&brokenWriter{n: 4})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"demo"})
	require.ErrorIs(t, root.Execute(), errBroken)
}

func TestFillDefaults(t *testing.T) {
	out, err := run(t, "fill")
	require.NoError(t, err)
	require.Equal(t, "[1.0, 2.0, 3.0]\n[4.0, 5.0, 6.0]\n[7.0, 8.0, 9.0]\n", out)
}

func TestFillFlags(t *testing.T) {
	out, err := run(t, "fill", "--rows", "2", "--cols", "4", "--base", "0", "--inc", "0.5",
		"--set", "0,3=-1", "--set", "1, 0 = 9", "--precision", "2")
	require.NoError(t, err)
	require.Equal(t, "[0.00, 0.50, 1.00, -1.00]\n[9.00, 2.50, 3.00, 3.50]\n", out)
}

func TestFillSingleRow(t *testing.T) {
	for _, layout := range []string{layoutDense, layoutGrid} {
		t.Run(layout, func(t *testing.T) {
			out, err := run(t, "fill", "--layout", layout, "--row", "1")
			require.NoError(t, err)
			require.Equal(t, "[4.0, 5.0, 6.0]\n", out)
		})
	}
}

func TestFillOutOfBounds(t *testing.T) {
	_, err := run(t, "fill", "--row", "5")
	require.ErrorIs(t, err, matrix.ErrOutOfBounds)

	_, err = run(t, "fill", "--set", "3,0=1")
	require.ErrorIs(t, err, matrix.ErrOutOfBounds)
}

func TestFillInvalidInput(t *testing.T) {
	_, err := run(t, "fill", "--rows", "0")
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = run(t, "fill", "--rows", strconv.Itoa(math.MaxInt/2+1), "--cols", "2")
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = run(t, "fill", "--set", "1;1=2")
	require.ErrorIs(t, err, errBadSet)

	_, err = run(t, "fill", "--layout", "sparse")
	require.ErrorIs(t, err, errUnknownLayout)

	_, err = run(t, "fill", "--log-level", "loud")
	require.Error(t, err)
}

func TestFillFiniteOnly(t *testing.T) {
	_, err := run(t, "fill", "--finite-only", "--set", "0,0=NaN")
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	out, err := run(t, "fill", "--set", "0,0=NaN", "--row", "0")
	require.NoError(t, err)
	require.Equal(t, "[NaN, 2.0, 3.0]\n", out)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LVMATRIX_LAYOUT", "grid")
	t.Setenv("LVMATRIX_ROWS", "1")
	t.Setenv("LVMATRIX_INC", "2")

	out, err := run(t, "fill")
	require.NoError(t, err)
	require.Equal(t, "[1.0, 3.0, 5.0]\n", out)

	// explicit flags beat the environment
	out, err = run(t, "fill", "--rows", "2", "--cols", "1")
	require.NoError(t, err)
	require.Equal(t, "[1.0]\n[3.0]\n", out)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvmatrix.yaml")
	body := "layout: grid\nrows: 2\ncols: 2\nbase: 10\ninc: -1\nprecision: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	out, err := run(t, "fill", "--config", path)
	require.NoError(t, err)
	require.Equal(t, "[10.0, 9.0]\n[8.0, 7.0]\n", out)

	_, err = run(t, "fill", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParseCellEdit(t *testing.T) {
	cases := []struct {
		in      string
		want    cellEdit
		wantErr bool
	}{
		{in: "1,1=5.2", want: cellEdit{row: 1, col: 1, value: 5.2}},
		{in: " 0 , 2 = -3 ", want: cellEdit{row: 0, col: 2, value: -3}},
		{in: "-1,0=1", want: cellEdit{row: -1, col: 0, value: 1}},
		{in: "1,1", wantErr: true},
		{in: "1=2", wantErr: true},
		{in: "a,1=2", wantErr: true},
		{in: "1,b=2", wantErr: true},
		{in: "1,1=x", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(strconv.Quote(tc.in), func(t *testing.T) {
			got, err := parseCellEdit(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestLoadConfigNormalizesLayout(t *testing.T) {
	v := viper.New()
	v.Set(keyLayout, " GRID ")
	v.Set(keyPrecision, -1)

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	require.Equal(t, layoutGrid, cfg.Layout)

	v.Set(keyPrecision, -3)
	_, err = loadConfig(v)
	require.Error(t, err)
}
