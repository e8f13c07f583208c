package main

import (
	"testing"

	"github.com/pion/pixconv/pkg/convert"
	"github.com/stretchr/testify/assert"
)

func TestPairs(t *testing.T) {
	e := convert.NewEngine(&convert.Config{Workers: 3})
	defer e.Close()

	for name, run := range pairs {
		run := run
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() { run(e, 9, 7, 2) })
		})
	}
}

func TestPairNames(t *testing.T) {
	assert.Equal(t, "gray-rgb, i420-rgb, rgb-bgr, rgb-gray, rgb-i420", pairNames())
}
