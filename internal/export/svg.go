package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/sortlab/internal/step"
)

// Bar colors keyed by highlight role, with a neutral default. Kept in
// sync with the terminal palette so exports look like the live view.
var roleColors = map[step.Role]string{
	step.RoleComparing: "#f5c518",
	step.RoleSwapping:  "#e05252",
	step.RolePivot:     "#b152e0",
	step.RoleSorted:    "#52e07e",
	step.RoleRange:     "#5285e0",
	step.RoleBoundary:  "#52cde0",
}

const defaultBarColor = "#8a8a8a"

// StepSVG renders one recorded step as a standalone SVG bar chart.
// Bars are colored by their highlight role; the step description is
// drawn beneath the chart.
func StepSVG(s step.Step, width, height int) string {
	n := len(s.Values)
	if n == 0 {
		return ""
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

	const captionHeight = 24
	chartHeight := height - captionHeight
	barWidth := float64(width) / float64(n)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i, v := range s.Values {
		barHeight := float64(v) / float64(maxVal) * float64(chartHeight-4)
		x := float64(i)*barWidth + barWidth*0.1
		y := float64(chartHeight) - barHeight
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, y, barWidth*0.8, barHeight, barColor(s.Highlights, i)))
	}

	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-family="monospace" font-size="12" fill="#cccccc" text-anchor="middle">%s</text>
</svg>`, width/2, height-8, escapeText(s.Description)))

	return sb.String()
}

func barColor(hl step.Highlights, i int) string {
	// Check in priority order so a swapped bar is not washed out by a
	// broader range highlight covering the same index.
	for _, role := range []step.Role{
		step.RoleSwapping, step.RoleComparing, step.RolePivot,
		step.RoleBoundary, step.RoleSorted, step.RoleRange,
	} {
		if hl.Has(role, i) {
			return roleColors[role]
		}
	}
	return defaultBarColor
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
