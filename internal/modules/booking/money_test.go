package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"400", 40000},
		{"400.00", 40000},
		{"400.5", 40050},
		{"0.99", 99},
		{"  12.30 ", 1230},
	}
	for _, c := range cases {
		got, err := ParseCents(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestParseCents_Rejects(t *testing.T) {
	for _, in := range []string{"", "abc", "1.234", "-5", "-0.50", "12.x"} {
		_, err := ParseCents(in)
		assert.Error(t, err, in)
	}
}

func TestServiceFee(t *testing.T) {
	assert.Equal(t, int64(4000), ServiceFee(40000))
	assert.Equal(t, int64(10), ServiceFee(99))   // 9.9 rounds up
	assert.Equal(t, int64(10), ServiceFee(104))  // 10.4 rounds down
	assert.Equal(t, int64(11), ServiceFee(105))  // 10.5 rounds up
	assert.Equal(t, int64(0), ServiceFee(0))
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "440.00", FormatCents(44000))
	assert.Equal(t, "0.05", FormatCents(5))
}
