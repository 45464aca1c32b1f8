package onnxstream

import (
	"reflect"
	"testing"

	"github.com/example/inkcycle/internal/ports/secondary"
)

func TestBuildArgs(t *testing.T) {
	req := secondary.RenderRequest{
		OutputPath: "/gallery/output7.png",
		Prompt:     "a single rose in morning light watercolor",
		Seed:       4242,
		Steps:      3,
		Width:      480,
		Height:     800,
	}

	got := buildArgs("models/sdxl-turbo", req)

	want := []string{
		"--xl", "--turbo",
		"--models-path", "models/sdxl-turbo",
		"--rpi-lowmem",
		"--prompt", "a single rose in morning light watercolor",
		"--seed", "4242",
		"--output", "/gallery/output7.png",
		"--steps", "3",
		"--res", "480x800",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("buildArgs() = %v, want %v", got, want)
	}
}

func TestBuildArgsResolution(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   string
	}{
		{name: "portrait e-paper panel", width: 480, height: 800, want: "480x800"},
		{name: "square", width: 512, height: 512, want: "512x512"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := buildArgs("m", secondary.RenderRequest{Width: tt.width, Height: tt.height})
			got := args[len(args)-1]
			if got != tt.want {
				t.Errorf("res argument = %q, want %q", got, tt.want)
			}
		})
	}
}
