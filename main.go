// paint renders a declarative scene document (JSON or YAML) to an image.
//
// Usage:
//
//	paint scene.json                  - render and open in the image viewer
//	paint scene.json -o out           - write out.png
//	paint scene.yaml -o out -f pdf    - write out.pdf
//	paint scene.json -o - > out.png   - write the image to stdout
//	paint scene.json --fb /dev/fb0    - show on a Linux framebuffer until Esc/Q/F4
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rook-computer/paint/internal/app"
	"github.com/rook-computer/paint/internal/render"
	"github.com/rook-computer/paint/internal/state"
	"github.com/rook-computer/paint/internal/system"
)

const debugLogPath = "./paint-debug.log"

// stdoutOutput as the output base writes the encoded image to stdout.
const stdoutOutput = "-"

var (
	flagOutput   string
	flagFormat   string
	flagShow     bool
	flagFB       string
	flagDebug    bool
	flagStdioLog string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "paint:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paint <scene-file>",
	Short: "Render a scene document to an image",
	Long: `paint draws the figures listed in a JSON or YAML scene document onto a
canvas, in document order, and saves or displays the result.

Figures that cannot be parsed or drawn are reported on stderr and skipped;
the rest of the scene is still rendered. Problems with the document itself
(unreadable file, bad Screen or Palette) abort without producing an image.

With neither --output nor --fb the image is opened in the host viewer.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPaint,
}

func init() {
	formats := make([]string, 0, len(render.Formats()))
	for _, f := range render.Formats() {
		formats = append(formats, string(f))
	}
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "save to this base name; the format extension is appended (- for stdout)")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", string(render.FormatPNG), "output format: "+strings.Join(formats, ", "))
	rootCmd.Flags().BoolVar(&flagShow, "show", false, "open the image in the host viewer")
	rootCmd.Flags().StringVar(&flagFB, "fb", "", "show the image on this framebuffer device (e.g. "+render.DefaultFramebuffer+")")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug logging to "+debugLogPath)
	rootCmd.Flags().StringVar(&flagStdioLog, "stdio-log", "", "redirect stderr (and stdout unless it carries the image) to this file; also configurable via PAINT_STDIO_LOG")
}

func runPaint(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(flagFormat)
	if err != nil {
		return err
	}
	if flagOutput == stdoutOutput && term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("refusing to write %s data to a terminal; redirect stdout", format)
	}

	// Best-effort: keep crash output when the console is in graphics mode.
	logPath := flagStdioLog
	if logPath == "" {
		logPath = os.Getenv("PAINT_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath, flagOutput == stdoutOutput); err != nil {
			fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
		}
	}

	logger, closeLog := newLogger(flagDebug)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(state.NewStore())
	a.Logger = logger

	res, err := a.RenderFile(ctx, args[0])
	if err != nil {
		return err
	}
	logger.Infof("main", "%s: %d figures drawn, %d dropped", args[0], res.Drawn, len(res.Diagnostics))

	switch flagOutput {
	case "":
	case stdoutOutput:
		if err := render.Encode(os.Stdout, res.Canvas.Image(), format); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
	default:
		if _, err := a.Save(res, flagOutput, format); err != nil {
			return err
		}
	}

	if flagShow || (flagOutput == "" && flagFB == "") {
		if _, err := a.ShowViewer(ctx, res, system.ShellRunner{Logger: logger}); err != nil {
			return err
		}
	}
	if flagFB != "" {
		return a.ShowFramebuffer(ctx, res, flagFB)
	}
	return nil
}

// newLogger always reports warnings to stderr; --debug adds a debug-level
// log file.
func newLogger(debug bool) (app.Logger, func()) {
	stderr := app.NewLevelLogger(os.Stderr, log.WarnLevel)
	if !debug {
		return stderr, func() {}
	}
	f, err := os.OpenFile(debugLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "debug log open error:", err)
		return stderr, func() {}
	}
	file := app.NewLogger(f, true)
	file.Infof("main", "debug logging enabled")
	return app.MultiLogger{stderr, file}, func() { _ = f.Close() }
}

