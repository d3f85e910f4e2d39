package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pokedex/internal/catalog"
	"github.com/five82/pokedex/internal/state"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeLines   = 4 // header, blank line, blank line, footer
)

func (m Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// renderMain renders header, the active screen and the key hints.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	width, _ := m.size()

	title := "Pokémon"
	status := m.list.State().Kind().String()
	if m.screen == screenDetail && m.detail != nil {
		title = catalog.DisplayName(m.detail.Name())
		status = m.detail.State().Kind().String()
	}

	bg := lipgloss.Color(m.theme.Surface)
	content := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.Logo.Background(bg).Render("pokédex"),
		styles.MutedText.Background(bg).Render("  "),
		styles.Text.Background(bg).Render(title),
		styles.MutedText.Background(bg).Render("  "+status),
	)
	return styles.Header.Width(width).Render(content)
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	width, _ := m.size()
	h := m.help
	h.ShowAll = false
	return styles.Footer.Width(width).Render(h.View(m.keys.forScreen(m.screen)))
}

func (m Model) renderContent() string {
	if m.screen == screenDetail && m.detail != nil {
		return m.renderDetail()
	}
	return m.renderList()
}

func (m Model) renderList() string {
	styles := m.theme.Styles()
	view := m.list.State()

	switch view.Kind() {
	case state.KindLoading:
		return m.renderLoading("Loading Pokémon…")
	case state.KindFailed:
		msg, _ := view.Message()
		return m.renderFailure(msg)
	}

	items, _ := view.Value()
	if len(items) == 0 {
		return styles.MutedText.Render("  No Pokémon found.")
	}

	_, height := m.size()
	rows := height - chromeLines
	if rows < 1 {
		rows = 1
	}
	start, end := visibleWindow(m.cursor, len(items), rows)

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		label := catalog.DisplayName(items[i].Name)
		if i == m.cursor {
			lines = append(lines, styles.Selected.Render("> "+label))
			continue
		}
		lines = append(lines, styles.Text.Render("  "+label))
	}
	return strings.Join(lines, "\n")
}

// visibleWindow returns the [start, end) range of rows that keeps cursor in view.
func visibleWindow(cursor, total, rows int) (int, int) {
	if total <= rows {
		return 0, total
	}
	start := cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > total {
		start = total - rows
	}
	return start, start + rows
}

func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	view := m.detail.State()

	switch view.Kind() {
	case state.KindLoading:
		return m.renderLoading(fmt.Sprintf("Loading %s…", catalog.DisplayName(m.detail.Name())))
	case state.KindFailed:
		msg, _ := view.Message()
		return m.renderFailure(msg)
	}

	pokemon, _ := view.Value()
	image := styles.MutedText.Render("No image available")
	if pokemon.ImageURL != nil {
		image = styles.AccentText.Render(pokemon.ImageURLString())
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.SuccessText.Render(catalog.DisplayName(pokemon.Name)),
		"",
		styles.MutedText.Render("Height  ")+styles.Text.Render(pokemon.Height),
		styles.MutedText.Render("Image   ")+image,
	)
	return styles.Card.Render(body)
}

func (m Model) renderLoading(label string) string {
	styles := m.theme.Styles()
	return "  " + styles.AccentText.Render(m.spinner.View()) + " " + styles.MutedText.Render(label)
}

// renderFailure renders the error panel shared by both screens.
func (m Model) renderFailure(message string) string {
	styles := m.theme.Styles()
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.DangerText.Render("Something went wrong"),
		styles.Text.Render(message),
		"",
		styles.FaintText.Render("Press r to retry"),
	)
	return styles.Panel.Render(body)
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	h := m.help
	h.ShowAll = true

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")
	b.WriteString(h.View(m.keys.forScreen(m.screen)))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Theme: " + m.theme.Name))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Press any key to close"))
	return styles.Card.Render(b.String())
}
