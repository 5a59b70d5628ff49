package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"taskmill.dev/cli/internal/core/rng"
	"taskmill.dev/cli/internal/plugins/random"
)

// SampleFlags holds command-line flags for the sample command
type SampleFlags struct {
	Interval time.Duration
	Keep     int
}

// NewSampleCommand creates the sample command
func NewSampleCommand(app *App) *cobra.Command {
	flags := &SampleFlags{}

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Live view of values drawn from the configured RNG provider",
		Long: `Launch an interactive terminal view that repeatedly draws from the
provider the random task uses and shows the recent values with running
statistics. Press space to pause, q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := app.Container().Provider()
			if err != nil {
				return err
			}

			model := newSampleModel(provider, app.Container().Config.RNGAlgorithm, flags)
			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("sample view failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&flags.Interval, "interval", 250*time.Millisecond, "Delay between draws")
	cmd.Flags().IntVar(&flags.Keep, "keep", 16, "Number of recent values to display")
	return cmd
}

var (
	sampleTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("99")).
				Bold(true)

	sampleValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("12"))

	sampleStatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	samplePausedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("203")).
				Bold(true)
)

type sampleTickMsg time.Time

type sampleModel struct {
	provider  rng.Provider
	algorithm string
	interval  time.Duration
	keep      int

	recent []float64
	count  int
	sum    float64
	min    float64
	max    float64
	paused bool
}

func newSampleModel(provider rng.Provider, algorithm string, flags *SampleFlags) sampleModel {
	return sampleModel{
		provider:  provider,
		algorithm: algorithm,
		interval:  flags.Interval,
		keep:      flags.Keep,
		min:       1,
	}
}

func (m sampleModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return sampleTickMsg(t)
	})
}

func (m sampleModel) Init() tea.Cmd {
	return m.tick()
}

func (m sampleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			return m, nil
		}

	case sampleTickMsg:
		if !m.paused {
			value := m.provider.Float64()
			m.recent = append(m.recent, value)
			if len(m.recent) > m.keep {
				m.recent = m.recent[1:]
			}
			m.count++
			m.sum += value
			if value < m.min {
				m.min = value
			}
			if value > m.max {
				m.max = value
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m sampleModel) View() string {
	var b strings.Builder

	b.WriteString(sampleTitleStyle.Render(fmt.Sprintf("Taskmill sampler — %s provider", m.algorithm)))
	if m.paused {
		b.WriteString("  " + samplePausedStyle.Render("[paused]"))
	}
	b.WriteString("\n\n")

	for _, value := range m.recent {
		b.WriteString("  " + sampleValueStyle.Render("RANDOM: "+random.FormatValue(value)) + "\n")
	}

	if m.count > 0 {
		b.WriteString("\n" + sampleStatStyle.Render(fmt.Sprintf(
			"draws: %d   mean: %.6f   min: %.6f   max: %.6f",
			m.count, m.sum/float64(m.count), m.min, m.max)) + "\n")
	}

	b.WriteString("\n" + sampleStatStyle.Render("space pause · q quit") + "\n")
	return b.String()
}
