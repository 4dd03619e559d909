package money

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestMoney_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		v    Money
		want []byte
	}{
		{
			name: "1 positive",
			v:    FromInt(150),
			want: []byte("150"),
		},
		{
			name: "2 positive",
			v:    New(decimal.RequireFromString("150.34")),
			want: []byte("150.34"),
		},
		{
			name: "3 zero",
			v:    Money{},
			want: []byte("0"),
		},
		{
			name: "4 negative",
			v:    FromInt(-650),
			want: []byte("-650"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.MarshalJSON()

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMoney_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    Money
		wantErr bool
	}{
		{
			name: "1 number",
			data: []byte("300"),
			want: FromInt(300),
		},
		{
			name: "2 fraction",
			data: []byte("350.45"),
			want: New(decimal.RequireFromString("350.45")),
		},
		{
			name: "3 quoted",
			data: []byte(`" 1000 "`),
			want: FromInt(1000),
		},
		{
			name:    "4 garbage",
			data:    []byte(`"abc"`),
			wantErr: true,
		},
		{
			name:    "5 empty string",
			data:    []byte(`""`),
			wantErr: true,
		},
		{
			name: "6 trailing zeros",
			data: []byte("12.500"),
			want: New(decimal.RequireFromString("12.5")),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Money
			err := m.UnmarshalJSON(tt.data)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.True(t, tt.want.Equal(m.Decimal), "got %s want %s", m, tt.want)
		})
	}
}

func TestMoney_Euro(t *testing.T) {
	require.Equal(t, "15.6€", New(decimal.RequireFromString("15.60")).Euro())
}

func TestParse_bounds(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "1 cents",
			input: "0.01",
		},
		{
			name:  "2 largest",
			input: "999999999999999.99",
		},
		{
			name:  "3 exponent within range",
			input: "1.5e3",
		},
		{
			name:    "4 sub cent",
			input:   "0.001",
			wantErr: true,
		},
		{
			name:    "5 tiny exponent",
			input:   "1e-20000000",
			wantErr: true,
		},
		{
			name:    "6 huge exponent",
			input:   "1e400",
			wantErr: true,
		},
		{
			name:    "7 too many integer digits",
			input:   "1000000000000000",
			wantErr: true,
		},
		{
			name:    "8 too long",
			input:   "1.00000000000000000000000000000000000",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}
