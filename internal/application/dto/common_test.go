package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPage(t *testing.T) {
	cases := []struct {
		name       string
		in         PageRequest
		wantLimit  int
		wantOffset int
	}{
		{"sin valores aplica defaults", PageRequest{}, 20, 0},
		{"limit negativo aplica default", PageRequest{Limit: -5, Offset: -1}, 20, 0},
		{"limit dentro del rango se conserva", PageRequest{Limit: 50, Offset: 40}, 50, 40},
		{"limit sobre el máximo se acota a 100", PageRequest{Limit: 500}, 100, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.in
			p.DefaultPage()
			assert.Equal(t, tc.wantLimit, p.Limit)
			assert.Equal(t, tc.wantOffset, p.Offset)
		})
	}
}
