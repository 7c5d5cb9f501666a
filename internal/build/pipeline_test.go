package build

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/quayside/shipd/internal/recipe"
)

func TestPhaseOrder(t *testing.T) {
	p := newPipeline(nil, nil, "linux/amd64")

	want := []string{
		"base-selected",
		"workdir-set",
		"deps-installed",
		"files-copied",
		"entrypoint-defined",
	}

	steps := p.phases()
	if len(steps) != len(want) {
		t.Fatalf("len(phases) = %d, want %d", len(steps), len(want))
	}
	for i, step := range steps {
		if step.name != want[i] {
			t.Errorf("phases[%d] = %q, want %q", i, step.name, want[i])
		}
	}
}

func TestExecutePhasesRunsInOrder(t *testing.T) {
	var order []string
	steps := []phaseStep{
		{"first", func(context.Context) error { order = append(order, "first"); return nil }},
		{"second", func(context.Context) error { order = append(order, "second"); return nil }},
		{"third", func(context.Context) error { order = append(order, "third"); return nil }},
	}

	if err := executePhases(context.Background(), steps); err != nil {
		t.Fatalf("executePhases: %v", err)
	}

	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
		t.Fatalf("order = %v", order)
	}
}

func TestExecutePhasesAbortsOnFailure(t *testing.T) {
	boom := errors.New("install exploded")

	var ran []string
	steps := []phaseStep{
		{"deps-installed", func(context.Context) error { ran = append(ran, "deps"); return boom }},
		{"files-copied", func(context.Context) error { ran = append(ran, "files"); return nil }},
	}

	err := executePhases(context.Background(), steps)
	if !errors.Is(err, ErrBuild) {
		t.Fatalf("error = %v, want ErrBuild", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped cause", err)
	}
	if !strings.Contains(err.Error(), "deps-installed") {
		t.Errorf("error %q does not name the failing phase", err)
	}

	if len(ran) != 1 || ran[0] != "deps" {
		t.Fatalf("ran = %v, want only the failing phase", ran)
	}
}

func TestPlatformSlug(t *testing.T) {
	tests := []struct {
		platform string
		want     string
	}{
		{"linux/amd64", "linux-amd64"},
		{"linux/arm64", "linux-arm64"},
		{"linux/arm/v7", "linux-arm-v7"},
	}

	for _, tt := range tests {
		if got := platformSlug(tt.platform); got != tt.want {
			t.Errorf("platformSlug(%q) = %q, want %q", tt.platform, got, tt.want)
		}
	}
}

func TestContainerID(t *testing.T) {
	p := newPipeline(nil, &recipe.Recipe{Name: "teneo-bot"}, "linux/amd64")
	if got := p.containerID(); got != "teneo-bot-build-linux-amd64" {
		t.Fatalf("containerID = %q", got)
	}
}
