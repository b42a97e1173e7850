package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ashshourov/OrbitSphere/internal/app"
	"github.com/ashshourov/OrbitSphere/internal/scene"
)

var (
	timeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	summaryStyle = lipgloss.NewStyle().Bold(true)
	sceneStyles  = map[scene.State]lipgloss.Style{
		scene.Title:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		scene.Orbit:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		scene.Detail: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	}
)

type simulateOptions struct {
	seconds      float64
	selectName   string
	restartAfter float64
	until        string
}

func simulateCmd() *cobra.Command {
	var opts simulateOptions
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the viewer headless and print the scene timeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return simulate(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().Float64Var(&opts.seconds, "seconds", 20, "simulated seconds to run")
	cmd.Flags().StringVar(&opts.selectName, "select", "", "item to pick whenever the orbit view is active")
	cmd.Flags().Float64Var(&opts.restartAfter, "restart-after", 0, "press restart this many seconds into the detail view (0 never)")
	cmd.Flags().StringVar(&opts.until, "until", "", "stop once this scene is active")
	return cmd
}

func simulate(out io.Writer, opts simulateOptions) error {
	until := scene.None
	if opts.until != "" {
		s, err := scene.ParseState(opts.until)
		if err != nil {
			return unknownName("scene", opts.until, stateNames())
		}
		until = s
	}

	a, layout, err := buildApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if opts.selectName != "" {
		names := make([]string, len(layout.Items))
		for i, it := range layout.Items {
			names[i] = it.Name
		}
		if !containsFold(names, opts.selectName) {
			return unknownName("item", opts.selectName, names)
		}
	}

	changes := 0
	detailAt := -1.0
	unsubscribe := a.OnSceneChange(func(s scene.State, at float64) {
		changes++
		if s == scene.Detail {
			detailAt = at
		}
		fmt.Fprintf(out, "%s  %s\n", timeStyle.Render(fmt.Sprintf("%7.2fs", at)), sceneStyles[s].Render(s.String()))
	})
	defer unsubscribe()

	if err := a.Start(); err != nil {
		return err
	}

	for a.Elapsed() < opts.seconds {
		a.Tick()
		active, ok := a.Orchestrator().Active()
		if !ok {
			continue
		}
		if active == until {
			break
		}
		act(out, a, active, opts, detailAt)
	}

	final := a.Orchestrator().Current()
	fmt.Fprintln(out, summaryStyle.Render(fmt.Sprintf("simulated %.2fs, %d scene changes, final state %s",
		a.Elapsed(), changes, final)))
	return nil
}

// act applies the scripted input for the active scene.
func act(out io.Writer, a *app.App, active scene.State, opts simulateOptions, detailAt float64) {
	switch active {
	case scene.Orbit:
		if opts.selectName == "" {
			return
		}
		ok, _ := a.Select(opts.selectName)
		if !ok {
			return
		}
		if it, picked := a.Selection().Get(); picked {
			fmt.Fprintf(out, "%s  %s\n", timeStyle.Render(fmt.Sprintf("%7.2fs", a.Elapsed())),
				noteStyle.Render("picked "+it.Name()))
		}
	case scene.Detail:
		if opts.restartAfter <= 0 || detailAt < 0 || a.Elapsed()-detailAt < opts.restartAfter {
			return
		}
		if a.Restart() {
			fmt.Fprintf(out, "%s  %s\n", timeStyle.Render(fmt.Sprintf("%7.2fs", a.Elapsed())),
				noteStyle.Render("pressed restart"))
		}
	}
}

func stateNames() []string {
	states := scene.States()
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = s.String()
	}
	return names
}

func containsFold(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
