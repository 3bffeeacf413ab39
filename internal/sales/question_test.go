package sales

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestion(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     Query
	}{
		{
			name:     "single words",
			question: "How many units of Fish were sold in Jakkarta on transactions with at least 199 units?",
			want:     Query{Product: "Fish", City: "Jakkarta", MinSales: 199},
		},
		{
			name:     "multi word product and city",
			question: "How many units of Ice Cream were sold in Rio de Janeiro on transactions with at least 5 units?",
			want:     Query{Product: "Ice Cream", City: "Rio de Janeiro", MinSales: 5},
		},
		{
			name:     "case insensitive",
			question: "HOW MANY UNITS OF SOAP WERE SOLD IN LONDON ON TRANSACTIONS WITH AT LEAST 189 UNITS?",
			want:     Query{Product: "SOAP", City: "LONDON", MinSales: 189},
		},
		{
			name:     "accented city",
			question: "How many units of Fish were sold in São Paulo on transactions with at least 10 units?",
			want:     Query{Product: "Fish", City: "São Paulo", MinSales: 10},
		},
		{
			name:     "accented product",
			question: "How many units of Crème Brûlée were sold in Lyon on transactions with at least 3 units?",
			want:     Query{Product: "Crème Brûlée", City: "Lyon", MinSales: 3},
		},
		{
			name:     "combining accent",
			question: "How many units of Fish were sold in Bogota\u0301 on transactions with at least 2 units?",
			want:     Query{Product: "Fish", City: "Bogota\u0301", MinSales: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuestion(tt.question)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseQuestion_Missing(t *testing.T) {
	questions := []string{
		"How many were sold in Lagos on transactions with at least 10 units?",
		"How many units of Fish were sold on transactions with at least 10 units?",
		"How many units of Fish were sold in Lagos on transactions?",
		"",
	}
	for _, q := range questions {
		_, err := ParseQuestion(q)
		require.Error(t, err, q)
		assert.True(t, errors.Is(err, ErrExtraction), q)
	}
}
