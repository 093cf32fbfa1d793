package main

import (
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "os"
    "path/filepath"

    "github.com/atotto/clipboard"
    "github.com/spf13/cobra"
    "go.uber.org/zap"

    "scroll-overflow/internal/config"
    "scroll-overflow/internal/logging"
    "scroll-overflow/internal/tui"
    "scroll-overflow/internal/tui/geom"
    "scroll-overflow/internal/tui/util"
)

const Version = "0.3.0"

// app carries what the persistent flags resolve to.
type app struct {
    configPath string
    verbose    bool
    logFile    string
    noColor    bool

    cfg    *config.Config
    logger *zap.Logger

    // swapped in tests
    copyState func(string) error
}

func main() {
    if err := newRootCmd().Execute(); err != nil {
        os.Exit(1)
    }
}

func newRootCmd() *cobra.Command {
    a := &app{copyState: clipboard.WriteAll}
    return a.rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
    a.logger = zap.NewNop()
    root := &cobra.Command{
        Use:   "scroll-overflow",
        Short: "Show which edges of a scrolled text still hide content",
        Long: `scroll-overflow pages a text and marks every edge that still has content
beyond it. The same detection runs headless through 'probe'.

Config is read from --config, or from the user config directory when present
(JSON, or YAML for .yaml/.yml). Flags override the file.`,
        SilenceUsage: true,
        PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
            return a.setup(cmd)
        },
        PersistentPostRun: func(cmd *cobra.Command, args []string) {
            if a.logger != nil {
                _ = a.logger.Sync()
            }
        },
    }
    root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (JSON or YAML)")
    root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
    root.PersistentFlags().StringVar(&a.logFile, "log-file", "", "Write logs to this file (nothing is logged otherwise)")
    root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colors (also NO_COLOR)")

    root.AddCommand(a.viewCmd(), a.probeCmd(), versionCmd())
    return root
}

func (a *app) setup(cmd *cobra.Command) error {
    var (
        cfg *config.Config
        err error
    )
    if a.configPath != "" {
        cfg, err = config.Load(a.configPath)
    } else {
        cfg, err = config.LoadOptional(config.DefaultPath())
    }
    if err != nil {
        return err
    }
    flags := cmd.Flags()
    if flags.Changed("verbose") {
        cfg.Verbose = a.verbose
    }
    if flags.Changed("log-file") {
        cfg.LogFile = a.logFile
    }
    if flags.Changed("no-color") {
        cfg.NoColor = a.noColor
    }
    cfg.LogFile = config.ExpandPath(cfg.LogFile)
    a.cfg = cfg

    logger, err := logging.New(cfg.Verbose, cfg.LogFile)
    if err != nil {
        return err
    }
    a.logger = logger
    a.logger.Debug("config resolved",
        zap.String("config", a.configPath),
        zap.String("tolerance", cfg.Tolerance),
        zap.Bool("noColor", cfg.NoColor))
    return nil
}

/* ---------- view ---------- */

func (a *app) viewCmd() *cobra.Command {
    var tolerance string
    cmd := &cobra.Command{
        Use:   "view [FILE]",
        Short: "Page a file (or stdin) with edge hints",
        Args:  cobra.MaximumNArgs(1),
        RunE: func(cmd *cobra.Command, args []string) error {
            body, name, err := readInput(cmd.InOrStdin(), args)
            if err != nil {
                return err
            }
            tol, err := a.tolerance(cmd, tolerance)
            if err != nil {
                return err
            }
            glyphs, palette, err := a.theme()
            if err != nil {
                return err
            }
            return tui.Run(tui.Options{
                Title:     name,
                Body:      body,
                Tolerance: tol,
                NoColor:   a.cfg.NoColor,
                Glyphs:    glyphs,
                Palette:   palette,
                Logger:    a.logger,
                InputTTY:  name == "stdin",
            })
        },
    }
    cmd.Flags().StringVar(&tolerance, "tolerance", "", `Ignore content this close to an edge ("2", "3c", "10%")`)
    return cmd
}

/* ---------- probe ---------- */

func (a *app) probeCmd() *cobra.Command {
    var (
        opts      tui.ProbeOptions
        tolerance string
        asJSON    bool
        copyOut   bool
    )
    cmd := &cobra.Command{
        Use:   "probe [FILE]",
        Short: "Measure the overflow state of a file (or stdin) without a terminal",
        Long: `Mounts a viewport of --width x --height over the input, scrolls it to
(--x, --y) or to --at top|bottom, waits for every edge report and prints
the four booleans.`,
        Args: cobra.MaximumNArgs(1),
        RunE: func(cmd *cobra.Command, args []string) error {
            body, _, err := readInput(cmd.InOrStdin(), args)
            if err != nil {
                return err
            }
            if !cmd.Flags().Changed("width") {
                opts.Width = a.cfg.Width
            }
            if !cmd.Flags().Changed("height") {
                opts.Height = a.cfg.Height
            }
            if opts.Tolerance, err = a.tolerance(cmd, tolerance); err != nil {
                return err
            }
            opts.Logger = a.logger
            res, err := tui.Probe(body, opts)
            if err != nil {
                return err
            }
            data, err := json.Marshal(res)
            if err != nil {
                return fmt.Errorf("encode probe result: %w", err)
            }
            out := cmd.OutOrStdout()
            if asJSON {
                fmt.Fprintln(out, string(data))
            } else {
                fmt.Fprintln(out, res.String())
            }
            if copyOut {
                if err := a.copyState(string(data)); err != nil {
                    return fmt.Errorf("copy to clipboard: %w", err)
                }
            }
            return nil
        },
    }
    f := cmd.Flags()
    f.IntVar(&opts.Width, "width", 80, "Viewport width in cells (default from config)")
    f.IntVar(&opts.Height, "height", 24, "Viewport height in rows (default from config)")
    f.IntVar(&opts.X, "x", 0, "Horizontal scroll offset")
    f.IntVar(&opts.Y, "y", 0, "Vertical scroll offset")
    f.StringVar(&opts.At, "at", "", "Scroll to top or bottom instead of --y")
    f.StringVar(&tolerance, "tolerance", "", `Ignore content this close to an edge ("2", "3c", "10%")`)
    f.BoolVar(&asJSON, "json", false, "Print JSON")
    f.BoolVar(&copyOut, "copy", false, "Copy the JSON result to the clipboard")
    return cmd
}

/* ---------- version ---------- */

func versionCmd() *cobra.Command {
    return &cobra.Command{
        Use:   "version",
        Short: "Print version",
        Args:  cobra.NoArgs,
        Run: func(cmd *cobra.Command, args []string) {
            fmt.Fprintln(cmd.OutOrStdout(), "scroll-overflow", Version)
        },
    }
}

/* ---------- helpers ---------- */

// readInput returns the body and a display name for it.
func readInput(in io.Reader, args []string) (string, string, error) {
    if len(args) == 1 && args[0] != "-" {
        path := config.ExpandPath(args[0])
        data, err := os.ReadFile(path)
        if err != nil {
            return "", "", fmt.Errorf("read input: %w", err)
        }
        return string(data), filepath.Base(path), nil
    }
    if f, ok := in.(*os.File); ok {
        if fi, err := f.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
            return "", "", errors.New("no input: pass a FILE or pipe text on stdin")
        }
    }
    data, err := io.ReadAll(in)
    if err != nil {
        return "", "", fmt.Errorf("read stdin: %w", err)
    }
    return string(data), "stdin", nil
}

// tolerance prefers the command's flag over the config file.
func (a *app) tolerance(cmd *cobra.Command, flag string) (geom.Length, error) {
    if cmd.Flags().Changed("tolerance") {
        l, err := geom.ParseLength(flag)
        if err != nil {
            return geom.Length{}, fmt.Errorf("--tolerance: %w", err)
        }
        return l, nil
    }
    return a.cfg.ToleranceLength()
}

func (a *app) theme() (util.Glyphs, util.Palette, error) {
    glyphs := util.DefaultGlyphs()
    if a.cfg.ASCII {
        glyphs = util.ASCIIGlyphs()
    }
    glyphs, err := glyphs.Override(a.cfg.Glyphs)
    if err != nil {
        return glyphs, util.Palette{}, fmt.Errorf("config glyphs: %w", err)
    }
    palette, err := util.DefaultPalette().Override(a.cfg.Colors)
    if err != nil {
        return glyphs, palette, fmt.Errorf("config colors: %w", err)
    }
    return glyphs, palette, nil
}
