package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"daylight/internal/config"
	"daylight/internal/logging"
	"daylight/internal/solar"
	"daylight/internal/statusbar"
)

type commandContext struct {
	configFlag *string
	dateFlag   *string
	widthFlag  *int

	provider solar.Provider
	now      func() time.Time

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, dateFlag *string, widthFlag *int) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		dateFlag:   dateFlag,
		widthFlag:  widthFlag,
		provider:   solar.Astronomical{},
		now:        time.Now,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// loggerFor returns the invocation logger tagged with the command's
// correlation id. Logger construction failures fall back to stderr defaults.
func (c *commandContext) loggerFor(cmd *cobra.Command) *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, _ := c.ensureConfig()
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "init logger: %v\n", err)
			logger, _ = logging.New(logging.Options{})
		}
		c.logger = logger
	})
	return logging.WithContext(cmd.Context(), c.logger)
}

// today resolves the --date flag, or the local calendar date.
func (c *commandContext) today() (solar.Date, error) {
	if c.dateFlag != nil {
		if value := strings.TrimSpace(*c.dateFlag); value != "" {
			return solar.ParseDate(value)
		}
	}
	return solar.DateOf(c.now()), nil
}

func (c *commandContext) style(cfg *config.Config, pos solar.Position) statusbar.Style {
	width := cfg.Display.BarWidth
	if c.widthFlag != nil && *c.widthFlag > 0 {
		width = *c.widthFlag
	}
	return statusbar.Style{
		BarWidth:   width,
		Font:       cfg.Display.Font,
		FontSize:   cfg.Display.FontSize,
		Color:      cfg.Display.Color,
		DetailsURL: cfg.DetailsURL(pos),
		TimeLayout: cfg.Display.TimeLayout,
		Location:   time.Local,
	}
}

// buildReport runs the full computation for the resolved date and config.
func (c *commandContext) buildReport(cmd *cobra.Command) (*statusbar.Report, *config.Config, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	today, err := c.today()
	if err != nil {
		return nil, nil, err
	}
	logger := c.loggerFor(cmd)
	report, err := statusbar.Build(today, cfg.SolarPosition(), c.provider, logger)
	if err != nil {
		logger.Error("daylight computation failed", logging.Error(err))
		return nil, nil, err
	}
	return report, cfg, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
