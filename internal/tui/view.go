package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortlab/internal/analysis"
	"github.com/san-kum/sortlab/internal/step"
)

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateSetup:
		return m.viewSetup()
	case statePlay:
		return m.viewPlay()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("          " + cyan.Render("s o r t l a b") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, name := range m.algorithms {
		desc := m.metas[name].Description
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-12s", name)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-12s", name)) + dimmer.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter configure   q quit") + "\n")

	return b.String()
}

func (m model) viewSetup() string {
	var b strings.Builder

	meta := m.metas[m.selected]
	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.selected) + "  " + dim.Render(meta.Description) + "\n")
	b.WriteString("      " + dimmer.Render(fmt.Sprintf("best %s  avg %s  worst %s  space %s",
		meta.Best, meta.Average, meta.Worst, meta.Space)) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 40)) + "\n\n")

	for i, name := range m.paramNames {
		var val string
		switch name {
		case "shape":
			val = fmt.Sprintf("%12s", m.cfg.Shape)
		case "speed":
			val = fmt.Sprintf("%12s", m.cfg.Speed)
		default:
			val = fmt.Sprintf("%12d", m.paramValue(name))
		}
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%12s", m.editBuf+"▋")
		}
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-8s", name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-8s", name)) + dim.Render(val) + "\n")
		}
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString("      " + red.Render(m.status) + "\n\n")
	}
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  s start  esc back") + "\n")

	return b.String()
}

func (m model) viewPlay() string {
	d := m.sess.Driver
	cur := d.Cursor()
	s := cur.Current()

	var b strings.Builder

	statusIcon, statusText := stateBadge(d.State().String())
	b.WriteString(fmt.Sprintf("\n   %s %s  %s  %s\n",
		statusIcon, cyan.Render(m.selected), statusText,
		dim.Render(d.Speed().String())))

	frac := 0.0
	if cur.Len() > 1 {
		frac = float64(cur.Position()) / float64(cur.Len()-1)
	}
	b.WriteString("   " + m.prog.ViewAs(frac) + "  " + dim.Render(fmt.Sprintf("%3.0f%%", frac*100)) + "\n\n")

	b.WriteString(m.renderBars(s))

	b.WriteString("\n   " + white.Render(s.Description) + "\n")

	stats := statsUpTo(m.sess.Log, cur.Position())
	b.WriteString(fmt.Sprintf("   %s %d   %s %d   %s %d/%d\n",
		dim.Render("comparisons"), stats.Comparisons,
		dim.Render("swaps"), stats.Swaps,
		dim.Render("step"), cur.Position(), cur.Len()-1))

	series := analysis.InversionSeries(m.sess.Log)
	b.WriteString(fmt.Sprintf("   %s %s\n",
		dim.Render("disorder"), cyan.Render(sparkline(series[:cur.Position()+1], 30))))

	b.WriteString("\n   " + legend() + "\n")
	if m.status != "" {
		b.WriteString("   " + yellow.Render(m.status) + "\n")
	}
	b.WriteString("\n" + dim.Render("   "+playKeys.helpLine()) + "\n")

	return b.String()
}

func stateBadge(state string) (string, string) {
	switch state {
	case "playing":
		return green.Render("●"), green.Render("playing")
	case "paused":
		return yellow.Render("○"), yellow.Render("paused")
	case "finished":
		return cyan.Render("●"), cyan.Render("finished")
	}
	return dim.Render("○"), dim.Render("idle")
}

// renderBars draws the array as a vertical bar chart, coloring each
// bar by the highest-priority role that covers its index.
func (m model) renderBars(s step.Step) string {
	n := len(s.Values)
	if n == 0 {
		return ""
	}

	chartHeight := m.height - 16
	if chartHeight < 8 {
		chartHeight = 8
	}
	if chartHeight > 20 {
		chartHeight = 20
	}

	maxVal := s.Values[0]
	for _, v := range s.Values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal <= 0 {
		maxVal = 1
	}

	heights := make([]int, n)
	for i, v := range s.Values {
		h := v * chartHeight / maxVal
		if h < 1 {
			h = 1
		}
		heights[i] = h
	}

	var b strings.Builder
	for y := chartHeight; y >= 1; y-- {
		b.WriteString("   ")
		for i := range s.Values {
			if heights[i] >= y {
				b.WriteString(barStyle(s.Highlights, i).Render("██"))
			} else {
				b.WriteString("  ")
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString("   ")
	for _, v := range s.Values {
		b.WriteString(dim.Render(fmt.Sprintf("%-3d", v)))
	}
	b.WriteString("\n")

	return b.String()
}

func barStyle(hl step.Highlights, i int) lipgloss.Style {
	for _, role := range []step.Role{
		step.RoleSwapping, step.RoleComparing, step.RolePivot,
		step.RoleBoundary, step.RoleSorted, step.RoleRange,
	} {
		if hl.Has(role, i) {
			return roleStyles[role]
		}
	}
	return white
}

func legend() string {
	parts := []string{
		roleStyles[step.RoleComparing].Render("██") + dim.Render(" compare"),
		roleStyles[step.RoleSwapping].Render("██") + dim.Render(" swap"),
		roleStyles[step.RolePivot].Render("██") + dim.Render(" pivot"),
		roleStyles[step.RoleSorted].Render("██") + dim.Render(" sorted"),
		roleStyles[step.RoleRange].Render("██") + dim.Render(" range"),
	}
	return strings.Join(parts, "  ")
}

// statsUpTo counts comparisons and swaps over the log prefix ending
// at pos, so the counters track the cursor during playback.
func statsUpTo(l *step.Log, pos int) step.Stats {
	var st step.Stats
	for i := 0; i <= pos && i < l.Len(); i++ {
		s := l.At(i)
		st.Steps++
		if _, ok := s.Highlights[step.RoleComparing]; ok {
			st.Comparisons++
		}
		if _, ok := s.Highlights[step.RoleSwapping]; ok {
			st.Swaps++
		}
	}
	return st
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	stride := len(data) / width
	if stride < 1 {
		stride = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*stride < len(data); i++ {
		v := data[i*stride]
		idx := int((v - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

func (k playKeyMap) helpLine() string {
	bindings := []key.Binding{
		k.PlayPause, k.StepFwd, k.StepBack, k.Reset,
		k.Faster, k.Slower, k.Medium, k.Export, k.Setup, k.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
