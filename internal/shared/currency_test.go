package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCOP(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "$0 COP"},
		{"grouped thousands", 1234567, "$1.234.567 COP"},
		{"whole amount drops decimals", 50000, "$50.000 COP"},
		{"fractional uses comma", 10.5, "$10,50 COP"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatCOP(tc.amount))
		})
	}
}
