package form_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcpharmacy/backoffice-golang/internal/form"
)

func TestMoneyParsesDecimals(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"12.50", 12.5},
		{"9.99", 9.99},
		{"0", 0},
		{" 3.20 ", 3.2},
	}
	for _, tt := range tests {
		got, err := form.Money("price", tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestMoneyRejectsJunk(t *testing.T) {
	for _, input := range []string{"", "abc", "12,50", "$9.99", "-1"} {
		_, err := form.Money("price", input)
		require.Error(t, err, input)

		var ve *form.ValidationError
		require.True(t, errors.As(err, &ve), "must be a ValidationError, got %T", err)
		assert.Equal(t, "price", ve.Field)
	}
}

func TestCountParsesWholeNumbers(t *testing.T) {
	got, err := form.Count("stock", "15")
	require.NoError(t, err)
	assert.Equal(t, 15, got)
}

func TestCountRejectsFractionsAndNegatives(t *testing.T) {
	for _, input := range []string{"", "12.5", "abc", "-3"} {
		_, err := form.Count("stock", input)
		var ve *form.ValidationError
		require.True(t, errors.As(err, &ve), "input %q", input)
	}
}

func TestIDRejectsZeroAndJunk(t *testing.T) {
	got, err := form.ID("productId", "7")
	require.NoError(t, err)
	assert.Equal(t, uint(7), got)

	for _, input := range []string{"", "0", "x"} {
		_, err := form.ID("productId", input)
		assert.Error(t, err, input)
	}
}
