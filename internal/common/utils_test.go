package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundInt(t *testing.T) {
	cases := map[float64]int{
		21.4:  21,
		21.5:  22,
		-0.4:  0,
		-2.5:  -3,
		25.6:  26,
		0.0:   0,
		-12.6: -13,
	}
	for in, want := range cases {
		assert.Equal(t, want, RoundInt(in), "RoundInt(%v)", in)
	}
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 0.13, RoundTo(0.126, 2))
	assert.Equal(t, 1.0, RoundTo(0.999, 2))
	assert.Equal(t, 0.0, RoundTo(0.004, 2))
	assert.Equal(t, 0.0, RoundTo(-0.004, 2))
	assert.Equal(t, 2.5, RoundTo(2.5, 2))
}

func TestRoundToDecimalTies(t *testing.T) {
	cases := map[float64]float64{
		1.005:  1.01,
		0.285:  0.29,
		0.145:  0.15,
		-0.125: -0.13,
		2.675:  2.68,
	}
	for in, want := range cases {
		assert.Equal(t, want, RoundTo(in, 2), "RoundTo(%v, 2)", in)
	}
}

func TestPadTwo(t *testing.T) {
	assert.Equal(t, "00", PadTwo(0))
	assert.Equal(t, "07", PadTwo(7))
	assert.Equal(t, "21", PadTwo(21))
	assert.Equal(t, "104", PadTwo(104))
	assert.Equal(t, "-03", PadTwo(-3))
	assert.Equal(t, "-15", PadTwo(-15))
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "25.6", FormatFloat(25.6))
	assert.Equal(t, "3", FormatFloat(3))
	assert.Equal(t, "0.25", FormatFloat(0.25))
}
