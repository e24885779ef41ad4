package convert

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-convert/internal/format"
)

// Request is one validated conversion. Detection, normalization and
// matrix checks have already happened by the time a strategy sees it.
type Request struct {
	InputPath  string
	OutputPath string
	Input      format.ID
	Target     format.ID
	Quality    int
}

// Strategy converts one format family's inputs to any validated
// target, given a quality hint. Implementations order their own
// primary and fallback techniques internally.
type Strategy interface {
	Convert(ctx context.Context, req Request) error
}

// technique is one primary-or-fallback execution path inside a
// strategy.
type technique struct {
	name string
	run  func(ctx context.Context, req Request) error
}

// runTechniques tries each technique in order and returns on the first
// success. When every technique fails, the collected causes come back
// wrapped as a single StrategyFailure; individual technique errors are
// never passed through raw.
func runTechniques(ctx context.Context, log logrus.FieldLogger, req Request, techs []technique) error {
	var causes []error
	for _, t := range techs {
		err := t.run(ctx, req)
		if err == nil {
			return nil
		}
		log.WithFields(logrus.Fields{
			"technique": t.name,
			"from":      req.Input,
			"to":        req.Target,
		}).WithError(err).Warn("conversion technique failed")
		causes = append(causes, fmt.Errorf("%s: %w", t.name, err))
	}
	return wrapf(KindStrategyFailure, errors.Join(causes...),
		"all techniques failed for %s to %s", req.Input, req.Target)
}

// tempFile reserves a unique intermediate file in the OS temp dir.
// Unique names keep concurrent requests from colliding; the returned
// cleanup must run on every exit path.
func tempFile(pattern string) (string, func(), error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", nil, fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	f.Close()
	return path, func() { os.Remove(path) }, nil
}
