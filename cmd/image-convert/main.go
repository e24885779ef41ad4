package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ironsheep/image-convert/internal/config"
	"github.com/ironsheep/image-convert/internal/convert"
	"github.com/ironsheep/image-convert/internal/format"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if lvl, err := logrus.ParseLevel(os.Getenv("IMAGE_CONVERT_LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}

	root := &cobra.Command{
		Use:     "image-convert",
		Short:   "Convert images between formats",
		Long:    "image-convert detects the true format of an input image and re-encodes it in a requested target format.",
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
	}

	var configFile string
	root.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file (optional)")

	root.AddCommand(newConvertCmd(log, &configFile))
	root.AddCommand(newFormatsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newConvertCmd(log *logrus.Logger, configFile *string) *cobra.Command {
	var (
		input   string
		output  string
		target  string
		quality int
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert one image file to a target format",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := config.Load(*configFile)
			if err != nil {
				return err
			}
			conv, err := convert.New(cfg, log)
			if err != nil {
				return err
			}
			if err := conv.Convert(cmd.Context(), input, output, target, quality); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input image path")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output image path")
	cmd.Flags().StringVarP(&target, "format", "f", "", "target format (e.g. png, jpg, webp)")
	cmd.Flags().IntVarP(&quality, "quality", "q", 90, "quality for lossy targets (1-100)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("format")

	return cmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported input formats and their conversion targets",
		Run: func(cmd *cobra.Command, args []string) {
			reg := format.New()
			for _, id := range reg.Canonical() {
				targets := reg.OutputsFor(id)
				names := make([]string, len(targets))
				for i, t := range targets {
					names[i] = string(t)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-5s -> %s\n", id, strings.Join(names, ", "))
			}
		},
	}
}
