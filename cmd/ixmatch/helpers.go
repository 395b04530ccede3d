package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ixmatch/internal/config"
	"ixmatch/internal/scan"
)

// channelFlags are the discovery flags shared by match and revert.
type channelFlags struct {
	rgbPattern    string
	nirPattern    string
	extension     string
	caseSensitive bool
}

func addChannelFlags(cmd *cobra.Command, f *channelFlags) {
	cmd.Flags().StringVar(&f.rgbPattern, "rgb-pattern", "CAMERA_RGB", "Glob pattern locating the RGB channel directory")
	cmd.Flags().StringVar(&f.nirPattern, "nir-pattern", "CAMERA_NIR", "Glob pattern locating the NIR channel directory")
	cmd.Flags().StringVar(&f.extension, "extension", "iiq", "Capture file extension")
	cmd.Flags().BoolVarP(&f.caseSensitive, "case-sensitive", "s", false, "Match directory patterns case-sensitively")
}

// resolve layers explicitly set flags over config defaults.
func (f *channelFlags) resolve(cmd *cobra.Command, cfg *config.Config) (rgbPattern, nirPattern, extension string, caseSensitive bool) {
	rgbPattern = cfg.Channels.RGBPattern
	nirPattern = cfg.Channels.NIRPattern
	extension = cfg.Channels.Extension
	caseSensitive = cfg.Channels.CaseSensitive

	if cmd.Flags().Changed("rgb-pattern") {
		rgbPattern = f.rgbPattern
	}
	if cmd.Flags().Changed("nir-pattern") {
		nirPattern = f.nirPattern
	}
	if cmd.Flags().Changed("extension") {
		extension = f.extension
	}
	if cmd.Flags().Changed("case-sensitive") {
		caseSensitive = f.caseSensitive
	}
	return rgbPattern, nirPattern, extension, caseSensitive
}

// resolveChannelDirs locates the two channel directories under baseDir.
func resolveChannelDirs(baseDir, rgbPattern, nirPattern string, caseSensitive bool) (rgbDir, nirDir string, err error) {
	rgbDir, err = scan.DirByPattern(baseDir, rgbPattern, caseSensitive)
	if err != nil {
		return "", "", fmt.Errorf("locate RGB directory: %w", err)
	}
	nirDir, err = scan.DirByPattern(baseDir, nirPattern, caseSensitive)
	if err != nil {
		return "", "", fmt.Errorf("locate NIR directory: %w", err)
	}
	return rgbDir, nirDir, nil
}
