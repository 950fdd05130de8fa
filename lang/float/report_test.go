package float

import (
	"bytes"
	"math"
	"testing"

	"github.com/mna/fclass/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	r := Reporter{Output: &buf}

	require.NoError(t, r.Report("acos(2)", NaN()))
	require.NoError(t, r.Report("", Inf(-1)))

	want := "acos(2) = NaN\n" +
		"\tclass:       nan\n" +
		"\tis_nan:      true\n" +
		"\tis_infinite: false\n" +
		"\tis_finite:   false\n" +
		"-Inf = -Inf\n" +
		"\tclass:       -inf\n" +
		"\tis_nan:      false\n" +
		"\tis_infinite: true\n" +
		"\tis_finite:   false\n"
	assert.Equal(t, want, buf.String())
}

func TestReportBits(t *testing.T) {
	var buf bytes.Buffer
	r := Reporter{Output: &buf, Bits: true}

	require.NoError(t, r.Report("one", 1))
	want := "one = 1\n" +
		"\tclass:       finite\n" +
		"\tis_nan:      false\n" +
		"\tis_infinite: false\n" +
		"\tis_finite:   true\n" +
		"\tbits:        sign=0 exponent=0x3ff mantissa=0x0000000000000\n" +
		"\tzero:        false\n" +
		"\tsubnormal:   false\n"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	require.NoError(t, r.Report("tiny", math.SmallestNonzeroFloat64))
	require.NoError(t, r.Report("", negZero))
	want = "tiny = 5e-324\n" +
		"\tclass:       finite\n" +
		"\tis_nan:      false\n" +
		"\tis_infinite: false\n" +
		"\tis_finite:   true\n" +
		"\tbits:        sign=0 exponent=0x000 mantissa=0x0000000000001\n" +
		"\tzero:        false\n" +
		"\tsubnormal:   true\n" +
		"-0 = -0\n" +
		"\tclass:       finite\n" +
		"\tis_nan:      false\n" +
		"\tis_infinite: false\n" +
		"\tis_finite:   true\n" +
		"\tbits:        sign=1 exponent=0x000 mantissa=0x0000000000000\n" +
		"\tzero:        true\n" +
		"\tsubnormal:   false\n"
	assert.Equal(t, want, buf.String())
}

func TestReportShort(t *testing.T) {
	var buf bytes.Buffer
	r := Reporter{Output: &buf, Short: true}

	require.NoError(t, r.Report("log(0)", Inf(-1)))
	r.Bits = true
	require.NoError(t, r.Report("", negZero))

	want := "log(0) = -Inf (-inf)\n" +
		"-0 = -0 (finite) [sign=1 exponent=0x000 mantissa=0x0000000000000]\n"
	assert.Equal(t, want, buf.String())
}

func TestReportCompare(t *testing.T) {
	var buf bytes.Buffer
	r := Reporter{Output: &buf}

	require.NoError(t, r.ReportCompare(Float(1).Reciprocal(), token.EQEQ, Float(-1).Reciprocal()))
	require.NoError(t, r.ReportCompare(NaN(), token.BANGEQ, NaN()))
	require.NoError(t, r.ReportCompare(posZero, token.EQEQ, negZero))
	assert.Equal(t, "1 == -1: false\nNaN != NaN: true\n0 == -0: true\n", buf.String())

	err := r.ReportCompare(1, token.SLASH, 0)
	assert.ErrorContains(t, err, "invalid comparison operator")
}

func TestReportNoOutput(t *testing.T) {
	var r Reporter
	assert.EqualError(t, r.Report("x", 1), "no output set")
}
