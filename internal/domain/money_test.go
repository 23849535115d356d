package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney_String(t *testing.T) {
	tests := []struct {
		name   string
		amount Money
		want   string
	}{
		{name: "zero", amount: 0, want: "0.00"},
		{name: "whole units", amount: 500000, want: "5000.00"},
		{name: "with cents", amount: 2550, want: "25.50"},
		{name: "under one unit", amount: 99, want: "0.99"},
		{name: "negative", amount: -550, want: "-5.50"},
		{name: "negative under one unit", amount: -50, want: "-0.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.amount.String())
		})
	}
}

func TestMoney_Times(t *testing.T) {
	assert.Equal(t, Money(500000), Money(100000).Times(5))
	assert.Equal(t, Money(0), Money(100000).Times(0))
}
