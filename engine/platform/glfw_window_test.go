package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/lightscene/engine/core"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		in   glfw.Key
		want core.Key
	}{
		{glfw.KeyEscape, core.KeyEscape},
		{glfw.KeySpace, core.KeySpace},
		{glfw.KeyW, core.KeyW},
		{glfw.KeyA, core.KeyA},
		{glfw.KeyS, core.KeyS},
		{glfw.KeyD, core.KeyD},
		{glfw.KeyX, core.KeyX},
		{glfw.KeyQ, core.KeyUnknown},
	}
	for _, tt := range tests {
		if got := translateKey(tt.in); got != tt.want {
			t.Errorf("translateKey(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTranslateMods(t *testing.T) {
	got := translateMods(glfw.ModShift | glfw.ModControl)
	if got != core.ModShift|core.ModCtrl {
		t.Fatalf("mods = %b", got)
	}
	if translateMods(0) != core.ModNone {
		t.Fatal("expected no mods")
	}
}
