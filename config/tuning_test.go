package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseTuning(t *testing.T) {
	tuning, err := ParseTuning([]byte("difficulty: hard\nstartingLives: 5\nformationSpeed: 1.5\n"))
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	if tuning.Difficulty != "hard" || tuning.StartingLives != 5 || tuning.FormationBase != 1.5 {
		t.Errorf("unexpected tuning %+v", tuning)
	}
}

func TestParseTuningRejectsBadValues(t *testing.T) {
	bad := []string{
		"startingLives: -1\n",
		"dropDistance: -3\n",
		"difficulty: nightmare\n",
		"startingLives: [1, 2]\n",
	}
	for _, in := range bad {
		if _, err := ParseTuning([]byte(in)); err == nil {
			t.Errorf("ParseTuning(%q) succeeded, want error", in)
		}
	}
}

func TestTuningApply(t *testing.T) {
	savedPlayer, savedFormation, savedC := Player, Formation, *C
	t.Cleanup(func() {
		Player, Formation = savedPlayer, savedFormation
		*C = savedC
	})

	tuning := &Tuning{Difficulty: "easy", StartingLives: 7, DropDistance: 30}
	if got := tuning.Apply(); got != DifficultyEasy {
		t.Errorf("Apply difficulty = %v, want easy", got)
	}
	if Player.StartingLives != 7 {
		t.Errorf("StartingLives = %d, want 7", Player.StartingLives)
	}
	if Formation.DropDistance != 30 {
		t.Errorf("DropDistance = %v, want 30", Formation.DropDistance)
	}
	if Formation.BaseSpeed != savedFormation.BaseSpeed {
		t.Error("zero override should keep the default formation speed")
	}
	if C.Width != savedC.Width {
		t.Error("width without height should be ignored")
	}
}

func TestApplyTuningFileKeepsDefaultsOnError(t *testing.T) {
	savedPlayer, savedFormation, savedC := Player, Formation, *C
	t.Cleanup(func() {
		Player, Formation = savedPlayer, savedFormation
		*C = savedC
	})

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("startingLives: -4\ndifficulty: hard\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{bad, filepath.Join(dir, "missing.yaml")} {
		if got := ApplyTuningFile(path, DifficultyNormal); got != DifficultyNormal {
			t.Errorf("ApplyTuningFile(%s) = %v, want normal", path, got)
		}
	}
	if Player.StartingLives != savedPlayer.StartingLives {
		t.Errorf("StartingLives = %d, want default %d", Player.StartingLives, savedPlayer.StartingLives)
	}
}

func TestApplyTuningFile(t *testing.T) {
	savedPlayer, savedFormation, savedC := Player, Formation, *C
	t.Cleanup(func() {
		Player, Formation = savedPlayer, savedFormation
		*C = savedC
	})

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("startingLives: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := ApplyTuningFile(path, DifficultyHard); got != DifficultyHard {
		t.Errorf("difficulty = %v, want the passed-in hard", got)
	}
	if Player.StartingLives != 6 {
		t.Errorf("StartingLives = %d, want 6", Player.StartingLives)
	}
}

func TestResolutionAt(t *testing.T) {
	def := Display.Resolutions[Display.DefaultResolutionIndex]
	if got := ResolutionAt(-1); got != def {
		t.Errorf("ResolutionAt(-1) = %+v, want default %+v", got, def)
	}
	if got := ResolutionAt(len(Display.Resolutions)); got != def {
		t.Errorf("out of range = %+v, want default", got)
	}
	if got := ResolutionAt(0); got.Width != 360 {
		t.Errorf("ResolutionAt(0).Width = %d, want 360", got.Width)
	}
}
