package render

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#EEEEEE"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#828282", Dark: "#828282"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#FF6600", Dark: "#FF6600"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	rankStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Width(4).
			Align(lipgloss.Right)

	voteStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	SelectedTitleStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	domainStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	sourceStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	metaStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			PaddingLeft(7)

	emptyStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)
)
