// Package main provides the CLI entrypoint for fovea.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/calvike/fovea/internal/app"
	"github.com/calvike/fovea/internal/canvas"
	"github.com/calvike/fovea/internal/config"
	"github.com/calvike/fovea/internal/model"
	"github.com/calvike/fovea/internal/render"
	"github.com/calvike/fovea/internal/statsui"
	"github.com/calvike/fovea/internal/store"
	"github.com/calvike/fovea/internal/term"
	"github.com/calvike/fovea/internal/timing"
)

const (
	defaultWPM       = 300
	defaultFontScale = 5.0
)

var (
	readWPM        int
	readFontPath   string
	readFontScale  float64
	readForceKitty bool
	readForceCell  bool
	readNoHistory  bool

	statsSince string
	statsLast  int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fovea [file]",
		Short:         "RSVP speed reader for kitty-protocol terminals",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runReadCmd,
	}

	rootCmd.Flags().IntVar(&readWPM, "wpm", defaultWPM, "reading speed in words per minute (50-1000)")
	rootCmd.Flags().StringVar(&readFontPath, "font", "", "path to a TTF/OTF font file (default: embedded Go Regular)")
	rootCmd.Flags().Float64Var(&readFontScale, "font-scale", defaultFontScale, "font size as a multiple of terminal cell height")
	rootCmd.Flags().BoolVar(&readForceKitty, "force-kitty", false, "use the kitty graphics renderer without capability detection")
	rootCmd.Flags().BoolVar(&readForceCell, "force-cell", false, "use the character-cell renderer (no pixel graphics)")
	rootCmd.Flags().BoolVar(&readNoHistory, "no-history", false, "do not record session history")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runReadCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "wpm", &readWPM, fileCfg.Reading.WPM)
	applyStringConfig(cmd, "font", &readFontPath, fileCfg.Font.Path)
	applyFloatConfig(cmd, "font-scale", &readFontScale, fileCfg.Font.Scale)

	timingCfg, err := buildTimingConfig(fileCfg.Timing)
	if err != nil {
		return err
	}
	theme, err := buildTheme(fileCfg.Theme)
	if err != nil {
		return err
	}
	if readForceKitty && readForceCell {
		return fmt.Errorf("--force-kitty and --force-cell are mutually exclusive")
	}

	port := term.NewTTYPort()
	renderer, err := selectRenderer(port, theme)
	if err != nil {
		return err
	}

	var st *store.Store
	if !readNoHistory {
		st, err = store.Open(config.DefaultDBPath())
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
	}

	a := app.New(app.Options{
		Port:      port,
		Renderer:  renderer,
		TimingCfg: timingCfg,
		Store:     st,
		WPM:       readWPM,
	})

	initial := ""
	if len(args) == 1 {
		initial = args[0]
	}
	return a.Run(initial)
}

// selectRenderer picks the pixel or character-cell backend. Detection
// runs once at startup; an unsupported terminal is an error, not a
// silent downgrade.
func selectRenderer(port term.Port, theme canvas.Theme) (render.Renderer, error) {
	if readForceCell {
		return render.NewCell(port, theme), nil
	}
	if !readForceKitty && !term.DetectCapability().SupportsSubpixelOVP() {
		return nil, term.ErrNoGraphics
	}
	return render.NewGraphics(port, render.GraphicsOptions{
		FontPath:  readFontPath,
		FontScale: readFontScale,
		Theme:     theme,
	}), nil
}

func buildTimingConfig(tc config.TimingConfig) (timing.Config, error) {
	cfg := timing.DefaultConfig()
	applyInt(&cfg.MinWPM, tc.MinWPM)
	applyInt(&cfg.MaxWPM, tc.MaxWPM)
	applyInt(&cfg.LongWordThreshold, tc.LongWordThreshold)
	applyFloat(&cfg.LongWordPenalty, tc.LongWordPenalty)
	applyFloat(&cfg.PeriodMultiplier, tc.PeriodMultiplier)
	applyFloat(&cfg.CommaMultiplier, tc.CommaMultiplier)
	applyFloat(&cfg.QuestionMultiplier, tc.QuestionMultiplier)
	applyFloat(&cfg.ExclamationMultiplier, tc.ExclamationMultiplier)
	applyFloat(&cfg.NewlineMultiplier, tc.NewlineMultiplier)
	if cfg.MinWPM <= 0 || cfg.MaxWPM < cfg.MinWPM {
		return timing.Config{}, fmt.Errorf("invalid wpm bounds: min %d, max %d", cfg.MinWPM, cfg.MaxWPM)
	}
	return cfg, nil
}

func buildTheme(tc config.ThemeConfig) (canvas.Theme, error) {
	theme := canvas.DefaultTheme()
	if tc.Background != nil {
		c, err := canvas.ParseHexColor(*tc.Background)
		if err != nil {
			return canvas.Theme{}, fmt.Errorf("invalid theme background: %w", err)
		}
		theme.Background = c
	}
	if tc.Text != nil {
		c, err := canvas.ParseHexColor(*tc.Text)
		if err != nil {
			return canvas.Theme{}, fmt.Errorf("invalid theme text: %w", err)
		}
		theme.Text = c
	}
	if tc.Anchor != nil {
		c, err := canvas.ParseHexColor(*tc.Anchor)
		if err != nil {
			return canvas.Theme{}, fmt.Errorf("invalid theme anchor: %w", err)
		}
		theme.Anchor = c
	}
	return theme, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show session history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	return cmd
}

func runStatsCmd(_ *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	cfg := model.StatsConfig{
		Since: sinceTime,
		Last:  statsLast,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	model := statsui.NewModel(st, cfg)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt(target *int, value *int) {
	if value != nil {
		*target = *value
	}
}

func applyFloat(target *float64, value *float64) {
	if value != nil {
		*target = *value
	}
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# fovea configuration
# Uncomment a value to enable it. CLI flags override config values.

[reading]
# wpm = %d                # Reading speed in words per minute

[timing]
# min-wpm = 50
# max-wpm = 1000
# long-word-threshold = 10
# long-word-penalty = 1.15
# period-multiplier = 3.0
# comma-multiplier = 1.5
# question-multiplier = 3.0
# exclamation-multiplier = 3.0
# newline-multiplier = 4.0

[theme]
# background = "#1A1B26"
# text = "#A9B1D6"
# anchor = "#F7768E"

[font]
# path = ""               # TTF/OTF file (default: embedded Go Regular)
# scale = %.1f            # Font size as a multiple of cell height
`,
		defaultWPM,
		defaultFontScale,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
