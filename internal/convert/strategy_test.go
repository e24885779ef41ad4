package convert

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ironsheep/image-convert/internal/exttool"
	"github.com/ironsheep/image-convert/internal/format"
	"github.com/ironsheep/image-convert/internal/raster"
)

func TestRunTechniques_FirstSuccessWins(t *testing.T) {
	var ran []string
	techs := []technique{
		{"primary", func(context.Context, Request) error { ran = append(ran, "primary"); return nil }},
		{"fallback", func(context.Context, Request) error { ran = append(ran, "fallback"); return nil }},
	}

	if err := runTechniques(context.Background(), discardLog(), Request{}, techs); err != nil {
		t.Fatalf("runTechniques: %v", err)
	}
	if len(ran) != 1 || ran[0] != "primary" {
		t.Errorf("ran %v, want only primary", ran)
	}
}

func TestRunTechniques_FallsBack(t *testing.T) {
	var ran []string
	techs := []technique{
		{"primary", func(context.Context, Request) error { ran = append(ran, "primary"); return errors.New("no codec") }},
		{"fallback", func(context.Context, Request) error { ran = append(ran, "fallback"); return nil }},
	}

	if err := runTechniques(context.Background(), discardLog(), Request{}, techs); err != nil {
		t.Fatalf("fallback should have rescued the conversion: %v", err)
	}
	if len(ran) != 2 {
		t.Errorf("ran %v, want primary then fallback", ran)
	}
}

func TestRunTechniques_ExhaustionIsStrategyFailure(t *testing.T) {
	primaryErr := errors.New("primary broke")
	fallbackErr := errors.New("fallback broke")
	techs := []technique{
		{"primary", func(context.Context, Request) error { return primaryErr }},
		{"fallback", func(context.Context, Request) error { return fallbackErr }},
	}

	err := runTechniques(context.Background(), discardLog(), Request{Input: format.PSD, Target: format.JPG}, techs)
	if KindOf(err) != KindStrategyFailure {
		t.Fatalf("kind = %v, want strategy failure, not a raw passthrough", KindOf(err))
	}
	// Every underlying cause must survive in the chain.
	if !errors.Is(err, primaryErr) || !errors.Is(err, fallbackErr) {
		t.Error("cause chain lost a technique error")
	}
	for _, name := range []string{"primary", "fallback"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error text missing technique %q: %v", name, err)
		}
	}
}

// Exercise a real fallback chain end to end: the codec cannot decode a
// fake HEIC file and the external tool does not exist, so the heif
// strategy must exhaust into a StrategyFailure.
func TestHeifStrategy_Exhaustion(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "photo.heic")
	if err := os.WriteFile(in, []byte("not really heif"), 0o644); err != nil {
		t.Fatal(err)
	}

	runner := &exttool.Runner{Timeout: 2 * time.Second}
	s := &heifStrategy{
		std:   &standardStrategy{opts: func(q int) raster.Options { return raster.Options{Quality: q} }},
		tools: &exttool.Tools{Runner: runner, HeifConvert: "definitely-not-installed"},
		log:   discardLog(),
	}

	err := s.Convert(context.Background(), Request{
		InputPath:  in,
		OutputPath: filepath.Join(dir, "out.jpg"),
		Input:      format.HEIF,
		Target:     format.JPG,
		Quality:    90,
	})
	if KindOf(err) != KindStrategyFailure {
		t.Fatalf("kind = %v (err %v), want strategy failure", KindOf(err), err)
	}

	var te *exttool.ToolError
	if !errors.As(err, &te) {
		t.Error("tool failure missing from cause chain")
	}
}

func TestTempFile_UniqueAndCleaned(t *testing.T) {
	a, cleanupA, err := tempFile("conv-*.png")
	if err != nil {
		t.Fatal(err)
	}
	b, cleanupB, err := tempFile("conv-*.png")
	if err != nil {
		cleanupA()
		t.Fatal(err)
	}
	if a == b {
		t.Errorf("temp files collide: %s", a)
	}

	cleanupA()
	cleanupB()
	for _, p := range []string{a, b} {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("temp file %s not removed", p)
		}
	}
}
