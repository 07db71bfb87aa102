package cli

import (
	"os"
	"testing"
)

func TestCarveCommand_Blue(t *testing.T) {
	env := newTestEnv(t)
	in := env.writeStriped(t, "in.png", 5, 4, 2)
	out := env.path("out.png")
	preview := env.path("marked.png")

	if _, err := run(t, "", "--config", env.config, "carve", in, out, "--mode", "blue", "--preview", preview); err != nil {
		t.Fatalf("carve failed: %v", err)
	}

	img := decodePNG(t, out)
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Fatalf("output size: got %dx%d, want 4x4", img.Bounds().Dx(), img.Bounds().Dy())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if _, _, b, _ := img.At(x, y).RGBA(); b != 0 {
				t.Errorf("pixel (%d,%d) still blue", x, y)
			}
		}
	}

	marked := decodePNG(t, preview)
	if marked.Bounds().Dx() != 5 {
		t.Errorf("preview width: got %d, want 5", marked.Bounds().Dx())
	}
	if _, _, b, _ := marked.At(2, 0).RGBA(); b>>8 != 255 {
		t.Errorf("preview seam pixel blue: got %d, want 255", b>>8)
	}
}

func TestCarveCommand_Count(t *testing.T) {
	env := newTestEnv(t)
	in := env.writeStriped(t, "in.png", 6, 3, 0)
	out := env.path("out.png")

	if _, err := run(t, "", "--config", env.config, "carve", in, out, "-n", "4", "-m", "energy"); err != nil {
		t.Fatalf("carve failed: %v", err)
	}
	if w := decodePNG(t, out).Bounds().Dx(); w != 2 {
		t.Errorf("output width: got %d, want 2", w)
	}
}

func TestCarveCommand_Errors(t *testing.T) {
	env := newTestEnv(t)
	in := env.writeStriped(t, "in.png", 2, 2, 0)

	tests := []struct {
		name string
		args []string
	}{
		{"bad mode", []string{"carve", in, env.path("o.png"), "--mode", "green"}},
		{"zero count", []string{"carve", in, env.path("o.png"), "-n", "0"}},
		{"too many seams", []string{"carve", in, env.path("o.png"), "-n", "3"}},
		{"missing input", []string{"carve", env.path("nope.png"), env.path("o.png")}},
		{"bad output extension", []string{"carve", in, env.path("o.xyz")}},
		{"wrong arg count", []string{"carve", in}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config", env.config}, tt.args...)
			if _, err := run(t, "", args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestEnergyCommand(t *testing.T) {
	env := newTestEnv(t)
	in := env.writeStriped(t, "in.png", 4, 3, 1)

	for _, overlay := range []string{"0", "0.4"} {
		out := env.path("energy-" + overlay + ".png")
		if _, err := run(t, "", "--config", env.config, "energy", in, out, "--overlay", overlay); err != nil {
			t.Fatalf("energy (overlay %s) failed: %v", overlay, err)
		}
		img := decodePNG(t, out)
		if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
			t.Errorf("energy map size: got %dx%d, want 4x3", img.Bounds().Dx(), img.Bounds().Dy())
		}
	}

	if _, err := run(t, "", "--config", env.config, "energy", in, env.path("e.png"), "--overlay", "1.5"); err == nil {
		t.Error("expected error for overlay > 1")
	}
	if _, err := os.Stat(env.path("e.png")); !os.IsNotExist(err) {
		t.Error("no file should be written for a rejected overlay")
	}
}
