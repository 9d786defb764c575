package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/stechuhr/internal/clock"
	"github.com/stechuhr/internal/config"
	"github.com/stechuhr/internal/render"
	"github.com/stechuhr/internal/work"
)

func runReport(cmd *cobra.Command, args []string) error {
	now := cfg.Now()

	startStr, _ := cmd.Flags().GetString("start")
	if startStr == "" {
		var err error
		startStr, err = promptStartTime(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}
	start, err := clock.Parse(startStr, now)
	if err != nil {
		return err
	}

	floor, err := clock.Parse(cfg.EarliestStart, now)
	if err != nil {
		return fmt.Errorf("invalid earliest start %q in config: %w", cfg.EarliestStart, err)
	}
	start, clamped := work.ClampStart(start, floor)
	if clamped {
		slog.Info("start time before plausible workday start, using floor",
			"given", startStr, "floor", floor.Format("15:04:05"))
	}

	var end *time.Time
	if endStr, _ := cmd.Flags().GetString("end"); endStr != "" {
		t, err := clock.Parse(endStr, now)
		if err != nil {
			return err
		}
		end = &t
	}

	daily, _ := cmd.Flags().GetString("daily-goal")
	weekly, _ := cmd.Flags().GetString("weekly-goal")
	if daily == "" && !cmd.Flags().Changed("weekly-goal") {
		daily = cfg.DailyGoal
	}
	if weekly == "" {
		weekly = cfg.WeeklyGoal
	}
	goal, err := work.ResolveDailyGoal(daily, weekly)
	if err != nil {
		return err
	}

	breakStrs, _ := cmd.Flags().GetStringArray("break")
	breaks := make([]time.Duration, 0, len(breakStrs))
	for _, s := range breakStrs {
		d, err := clock.ParseInterval(s, now)
		if err != nil {
			return err
		}
		breaks = append(breaks, d)
	}
	if len(breaks) == 0 {
		slog.Info("no breaks given, using the default break rule")
	}

	rep := work.Compute(work.Input{
		Start:  start,
		End:    end,
		Now:    now,
		Goal:   goal,
		Breaks: breaks,
	})

	plain, _ := cmd.Flags().GetBool("plain")
	if !plain && render.WantColor(string(cfg.Color), os.Stdout) {
		fmt.Fprint(cmd.OutOrStdout(), render.Styled(rep))
	} else {
		fmt.Fprint(cmd.OutOrStdout(), render.Plain(rep))
	}
	return nil
}

// promptStartTime asks for the start time on stdin when the flag was not
// given. Empty lines re-prompt; EOF without input is fatal.
func promptStartTime(in io.Reader) (string, error) {
	reader := bufio.NewReader(in)
	for {
		fmt.Print("Time when work started (HH:MM[:SS]): ")
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		s := strings.TrimSpace(line)
		if s != "" {
			return s, nil
		}
		if err == io.EOF {
			return "", fmt.Errorf("start time not given")
		}
		fmt.Println("A start time is required.")
	}
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	Long: `Display the effective configuration and work rules.
Flags update the config file in your home directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		changed := false
		if cmd.Flags().Changed("weekly-goal") {
			cfg.WeeklyGoal, _ = cmd.Flags().GetString("weekly-goal")
			changed = true
		}
		if cmd.Flags().Changed("daily-goal") {
			cfg.DailyGoal, _ = cmd.Flags().GetString("daily-goal")
			changed = true
		}
		if cmd.Flags().Changed("earliest-start") {
			cfg.EarliestStart, _ = cmd.Flags().GetString("earliest-start")
			changed = true
		}
		if cmd.Flags().Changed("timezone") {
			cfg.TimeZone, _ = cmd.Flags().GetString("timezone")
			changed = true
		}
		if cmd.Flags().Changed("color") {
			mode, _ := cmd.Flags().GetString("color")
			cfg.Color = config.ColorMode(mode)
			changed = true
		}

		if changed {
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
		}

		daily, err := work.ResolveDailyGoal(cfg.DailyGoal, cfg.WeeklyGoal)
		if err != nil {
			return err
		}

		fmt.Printf("Config: Weekly: %s | Daily: %s (%sh) | Earliest start: %s | Color: %s\n",
			cfg.WeeklyGoal, clock.FormatHMS(daily), clock.FormatHours(daily), cfg.EarliestStart, cfg.Color)
		fmt.Printf("Rules: Short break: %dmin | Large break: %dmin | Long day: >=%s elapsed\n",
			work.ShortBreakMinutes, work.LargeBreakMinutes, clock.FormatHMS(work.LongDayThreshold))
		return nil
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for stechuhr.

Bash:
  $ source <(stechuhr completion bash)

Zsh:
  $ stechuhr completion zsh > "${fpath[1]}/_stechuhr"

Fish:
  $ stechuhr completion fish > ~/.config/fish/completions/stechuhr.fish

PowerShell:
  PS> stechuhr completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			return cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			return cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletion(os.Stdout)
		}
		return nil
	},
}

func init() {
	configCmd.Flags().StringP("weekly-goal", "w", "", "Weekly work goal <HH:MM[:SS]>")
	configCmd.Flags().StringP("daily-goal", "d", "", "Daily work goal <HH:MM[:SS]>")
	configCmd.Flags().String("earliest-start", "", "Earliest plausible workday start <HH:MM>")
	configCmd.Flags().String("timezone", "", "Timezone (e.g. Europe/Vienna)")
	configCmd.Flags().String("color", "", "Color mode: auto, always, never")
}
