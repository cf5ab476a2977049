package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "integer", input: "8", want: 8},
		{name: "decimal", input: "8.5", want: 8.5},
		{name: "whitespace", input: "  1.459 ", want: 1.459},
		{name: "negative", input: "-1", want: -1},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
		{name: "letters", input: "abc", wantErr: true},
		{name: "trailing garbage", input: "8.5l", wantErr: true},
		{name: "nan", input: "NaN", wantErr: true},
		{name: "infinity", input: "Inf", wantErr: true},
		{name: "hex float", input: "0x1p3", wantErr: true},
		{name: "signed hex", input: "-0X10", wantErr: true},
		{name: "leading zero", input: "08.5", want: 8.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDecimal(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFixed(t *testing.T) {
	assert.Equal(t, "100.0", Fixed(100, 1))
	assert.Equal(t, "8.50", Fixed(8.5, 2))
	assert.Equal(t, "1.500", Fixed(1.5, 3))
	assert.Equal(t, "12.75", Fixed(12.75, 2))
	assert.Equal(t, "13", Fixed(12.75, -1))
}
