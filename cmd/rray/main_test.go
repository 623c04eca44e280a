package main

import (
	"errors"
	"testing"

	"github.com/davelpz/rray/pkg/rrerr"
)

func TestExitCodeForMapsKnownKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"config", rrerr.Config(errors.New("bad flag")), 2},
		{"parse", rrerr.Parse(errors.New("bad yaml")), 3},
		{"io", rrerr.IO(errors.New("disk full")), 4},
		{"geometry", rrerr.Geometry(errors.New("singular matrix")), 5},
		{"unkinded", errors.New("plain failure"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v): got %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
