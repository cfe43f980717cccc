/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/basalt-labs/qrencode"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <text>",
	Short: "Encode text into a QR code symbol",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

var (
	flagConfig   string
	flagVersion  int
	flagECLevel  string
	flagMask     int
	flagBoostECL bool
	flagFormat   string
	flagOut      string
	flagBorder   int
	flagScale    int
	flagOpen     bool
	flagLogLevel string
)

func init() {
	encodeCmd.Flags().StringVar(&flagConfig, "config", "", "YAML config file with defaults")
	encodeCmd.Flags().IntVar(&flagVersion, "version", 0, "QR version 1-40, or 0 for automatic")
	encodeCmd.Flags().StringVar(&flagECLevel, "ec-level", "", "error correction level: L, M, Q or H (default from config, else M)")
	encodeCmd.Flags().IntVar(&flagMask, "mask", -1, "pin a mask pattern 0-7, or -1 to choose automatically")
	encodeCmd.Flags().BoolVar(&flagBoostECL, "boost-ecl", false, "raise the error correction level when the chosen version has spare capacity")
	encodeCmd.Flags().StringVar(&flagFormat, "format", "ascii", "output format: ascii, svg or png")
	encodeCmd.Flags().StringVar(&flagOut, "out", "", "output file path, relative paths resolved against the config's output_dir (required for svg/png; ascii prints to stdout)")
	encodeCmd.Flags().IntVar(&flagBorder, "border", -1, "quiet zone width in modules (default from config, else 4)")
	encodeCmd.Flags().IntVar(&flagScale, "scale", 8, "pixels per module for png output")
	encodeCmd.Flags().BoolVar(&flagOpen, "open", false, "open the generated svg/png in the system default viewer")
	encodeCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error (default from config, else warn)")
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := cfg.LogLevel
	if flagLogLevel != "" {
		logLevel = flagLogLevel
	}
	setupLogging(logLevel)

	ecLevelStr := cfg.ECLevel
	if flagECLevel != "" {
		ecLevelStr = flagECLevel
	}
	ecLevel, err := parseECLevel(ecLevelStr)
	if err != nil {
		return err
	}

	border := cfg.Border
	if flagBorder >= 0 {
		border = flagBorder
	}

	if flagOut != "" && !filepath.IsAbs(flagOut) {
		flagOut = filepath.Join(cfg.OutputDir, flagOut)
	}

	version := qrcode.Version(flagVersion)
	if version != qrcode.AutoVersion && (version < qrcode.MinVersion || version > qrcode.MaxVersion) {
		return fmt.Errorf("version must be 0 (auto) or in [1, 40], got %d", flagVersion)
	}

	text := args[0]
	slog.Info("encoding", "version", flagVersion, "ec_level", ecLevel, "bytes", len(text))

	opts := []qrcode.Option{qrcode.WithBoostECL(flagBoostECL)}
	if flagMask >= 0 {
		opts = append(opts, qrcode.WithMask(flagMask))
	}

	result, err := qrcode.Encode(version, ecLevel, text, opts...)
	if err != nil {
		slog.Error("encode failed", "err", err)
		return err
	}
	slog.Info("encoded", "version", result.Version, "size", result.Matrix.Size, "mask", result.Mask)

	switch strings.ToLower(flagFormat) {
	case "ascii":
		printPreview(result.Matrix)
		return nil
	case "svg":
		return writeAndMaybeOpen(result.Matrix, border, func(f *os.File, m *qrcode.Matrix) error {
			svg, err := m.ToSVGString(border)
			if err != nil {
				return err
			}
			_, err = f.WriteString(svg)
			return err
		})
	case "png":
		return writeAndMaybeOpen(result.Matrix, border, func(f *os.File, m *qrcode.Matrix) error {
			return writePNG(f, m, border, flagScale)
		})
	default:
		return fmt.Errorf("unknown format %q: must be ascii, svg or png", flagFormat)
	}
}

func writeAndMaybeOpen(m *qrcode.Matrix, border int, write func(*os.File, *qrcode.Matrix) error) error {
	if flagOut == "" {
		return fmt.Errorf("--out is required for this format")
	}
	f, err := os.Create(flagOut)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := write(f, m); err != nil {
		return fmt.Errorf("writing %s: %w", flagOut, err)
	}

	if flagOpen {
		if err := browser.OpenFile(flagOut); err != nil {
			slog.Warn("could not open preview in browser", "err", err)
		}
	}
	return nil
}

func parseECLevel(s string) (qrcode.ECLevel, error) {
	switch strings.ToUpper(s) {
	case "L":
		return qrcode.Low, nil
	case "M":
		return qrcode.Medium, nil
	case "Q":
		return qrcode.Quartile, nil
	case "H":
		return qrcode.High, nil
	default:
		return 0, fmt.Errorf("unknown error correction level %q: must be L, M, Q or H", s)
	}
}
