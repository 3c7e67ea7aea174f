package main

import (
	"bytes"
	"testing"

	"github.com/tdewolff/cube"
	"github.com/tdewolff/test"
)

func TestSizeConfig(t *testing.T) {
	cfg, err := sizeConfig(40)
	test.Error(t, err)
	test.T(t, cfg, cube.FromCubieSize(40))

	_, err = sizeConfig(0)
	test.That(t, err != nil)

	_, err = sizeConfig(cube.MaxCubieSize + 1)
	test.That(t, err != nil)
}

func TestWriteSVG(t *testing.T) {
	desc, err := cube.ParseFaceDescriptor("xUx===xDx")
	test.Error(t, err)
	s := cube.RenderOLL(desc, cube.DefaultSizeConfig)

	w := &bytes.Buffer{}
	test.Error(t, writeSVG(w, s, false))
	test.String(t, w.String(), s+"\n")

	w.Reset()
	test.Error(t, writeSVG(w, s, true))
	test.That(t, w.Len() < len(s))
	test.That(t, bytes.Count(w.Bytes(), []byte("\n")) == 1)
}
