package exttool

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RawOptions mirror the demosaic knobs the pipeline fixes. They are
// not caller-configurable today; DefaultRawOptions is the only producer.
type RawOptions struct {
	// UseCameraWB applies the white balance recorded by the camera.
	UseCameraWB bool

	// HalfSize demosaics at half resolution. The pipeline always wants
	// full resolution.
	HalfSize bool

	// AutoBrighten applies dcraw's automatic brightness adjustment.
	AutoBrighten bool
}

// DefaultRawOptions returns the fixed demosaic policy: camera white
// balance, full resolution, automatic brightening.
func DefaultRawOptions() RawOptions {
	return RawOptions{UseCameraWB: true, AutoBrighten: true}
}

// Raw wraps dcraw as the camera RAW demosaic engine.
type Raw struct {
	// Binary is the dcraw executable, normally "dcraw".
	Binary string

	Runner *Runner
}

// Decode demosaics the RAW file at path into an RGB TIFF written next
// to it and returns the TIFF path. The caller owns removal of the
// produced file.
func (r *Raw) Decode(ctx context.Context, path string, opts RawOptions) (string, error) {
	args := append(rawArgs(opts), path)
	if err := r.Runner.Run(ctx, r.Binary, args...); err != nil {
		return "", err
	}

	// dcraw -T replaces the input extension with .tiff.
	out := strings.TrimSuffix(path, filepath.Ext(path)) + ".tiff"
	if _, err := os.Stat(out); err != nil {
		return "", fmt.Errorf("dcraw produced no output: %w", err)
	}
	return out, nil
}

func rawArgs(o RawOptions) []string {
	args := []string{"-T"}
	if o.UseCameraWB {
		args = append(args, "-w")
	}
	if o.HalfSize {
		args = append(args, "-h")
	}
	if !o.AutoBrighten {
		args = append(args, "-W")
	}
	return args
}
