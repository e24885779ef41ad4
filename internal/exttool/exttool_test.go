package exttool

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/ironsheep/image-convert/internal/format"
)

func TestRunner_Success(t *testing.T) {
	r := &Runner{Timeout: 5 * time.Second}
	if err := r.Run(context.Background(), "true"); err != nil {
		t.Fatalf("Run(true) failed: %v", err)
	}
}

func TestRunner_ExitFailure(t *testing.T) {
	r := &Runner{Timeout: 5 * time.Second}
	err := r.Run(context.Background(), "false")
	if err == nil {
		t.Fatal("Run(false) should fail")
	}
	var te *ToolError
	if !errors.As(err, &te) {
		t.Fatalf("error type = %T, want *ToolError", err)
	}
	if te.Tool != "false" {
		t.Errorf("ToolError.Tool = %q, want false", te.Tool)
	}
}

func TestRunner_MissingBinary(t *testing.T) {
	r := &Runner{Timeout: 5 * time.Second}
	err := r.Run(context.Background(), "no-such-binary-for-sure")
	var te *ToolError
	if !errors.As(err, &te) {
		t.Fatalf("error = %v, want *ToolError", err)
	}
}

func TestRunner_Deadline(t *testing.T) {
	r := &Runner{Timeout: 100 * time.Millisecond}
	start := time.Now()
	err := r.Run(context.Background(), "sleep", "10")
	if err == nil {
		t.Fatal("Run(sleep 10) should be killed at the deadline")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("deadline kill took %s", elapsed)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded in chain", err)
	}
}

func TestMagickJob_Args(t *testing.T) {
	m := &Magick{Binary: "magick"}

	tests := []struct {
		name  string
		build func() *Job
		out   string
		want  []string
	}{
		{
			name:  "plain",
			build: func() *Job { return m.Open("in.psd") },
			out:   "out.png",
			want:  []string{"in.psd", "out.png"},
		},
		{
			name: "explicit format",
			build: func() *Job {
				j := m.Open("in.eps")
				j.SetFormat(format.SVG)
				return j
			},
			out:  "out.bin",
			want: []string{"in.eps", "svg:out.bin"},
		},
		{
			name: "density before input",
			build: func() *Job {
				j := m.Open("in.eps")
				j.SetResolution(300)
				j.SetFormat(format.PNG)
				return j
			},
			out:  "out.png",
			want: []string{"-density", "300", "in.eps", "png:out.png"},
		},
		{
			name: "quality after input",
			build: func() *Job {
				j := m.Open("in.psd")
				j.SetFormat(format.JPG)
				j.SetCompressionQuality(85)
				return j
			},
			out:  "out.jpg",
			want: []string{"in.psd", "-quality", "85", "jpg:out.jpg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.build().args(tt.out)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("args = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRawArgs(t *testing.T) {
	tests := []struct {
		name string
		opts RawOptions
		want []string
	}{
		{"defaults", DefaultRawOptions(), []string{"-T", "-w"}},
		{"half size", RawOptions{UseCameraWB: true, HalfSize: true, AutoBrighten: true}, []string{"-T", "-w", "-h"}},
		{"no auto brighten", RawOptions{UseCameraWB: true}, []string{"-T", "-w", "-W"}},
		{"bare", RawOptions{AutoBrighten: true}, []string{"-T"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rawArgs(tt.opts); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("rawArgs = %v, want %v", got, tt.want)
			}
		})
	}
}
