// Package tui is a terminal front end for a single local player.
//
// Keys:
//
//	letters      type into the active row
//	backspace    delete
//	enter        submit
//	ctrl+p       toggle practice mode
//	ctrl+r       reload today's puzzle
//	ctrl+s       show share text (finished games)
//	esc, ctrl+c  quit
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle-cz/internal/game"
	"github.com/robalobadob/wordle-cz/internal/player"
)

// keyboardRows is the on-screen Czech layout.
var keyboardRows = [][]string{
	{"Q", "W", "E", "R", "T", "Z", "U", "I", "O", "P"},
	{"Ů", "Ú", "A", "S", "D", "F", "G", "H", "J", "K", "L"},
	{"Ě", "Š", "Č", "Ř", "Y", "X", "C", "V", "B", "N"},
	{"M", "Á", "Í", "É", "Ň", "Ť", "Ž", "Ý", "Ď", "Ó"},
}

var (
	styleTile    = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	styleEmpty   = styleTile.Foreground(lipgloss.Color("8"))
	styleTyped   = styleTile.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236"))
	styleAbsent  = styleTile.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("240"))
	styleHeader  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleSubtle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleMessage = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Padding(1, 0, 0, 1)
)

// palette colors tiles by feedback; contrast swaps green/yellow for orange/blue.
func palette(contrast bool) map[game.Feedback]lipgloss.Style {
	exact, present := lipgloss.Color("28"), lipgloss.Color("136")
	if contrast {
		exact, present = lipgloss.Color("208"), lipgloss.Color("33")
	}
	return map[game.Feedback]lipgloss.Style{
		game.FeedbackExact:   styleTile.Foreground(lipgloss.Color("15")).Background(exact),
		game.FeedbackPresent: styleTile.Foreground(lipgloss.Color("15")).Background(present),
		game.FeedbackBase:    styleTile.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("91")),
		game.FeedbackAbsent:  styleAbsent,
	}
}

var messages = map[error]string{
	game.ErrIncompleteGuess: "Málo písmen",
	game.ErrWordNotAllowed:  "Slovo není v seznamu",
}

// Model is the bubbletea model for one player.
type Model struct {
	ctx     context.Context
	now     func() time.Time
	player  *player.Player
	message string
}

// New wraps p for the terminal.
func New(ctx context.Context, p *player.Player, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	return Model{ctx: ctx, now: now, player: p}
}

// Player returns the driven player.
func (m Model) Player() *player.Player { return m.player }

// Message is the status line shown under the board.
func (m Model) Message() string { return m.message }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		m.apply(game.Command{Type: game.CommandSubmit})
	case tea.KeyBackspace, tea.KeyDelete:
		m.apply(game.Command{Type: game.CommandDelete})
	case tea.KeyCtrlP:
		m.player.SetPractice(m.ctx, !m.player.Settings.Practice, m.now())
		m.message = "Denní hra"
		if m.player.Settings.Practice {
			m.message = "Procvičování"
		}
	case tea.KeyCtrlR:
		m.message = "Beze změny"
		if m.player.Reset(m.ctx, m.now()) {
			m.message = "Nová hra"
		}
	case tea.KeyCtrlS:
		text, err := m.player.Share()
		if err != nil {
			m.message = "Hra ještě neskončila"
		} else {
			m.message = text
		}
	case tea.KeyRunes:
		m.message = ""
		for _, r := range key.Runes {
			m.apply(game.Letter(r))
		}
	}
	return m, nil
}

func (m *Model) apply(cmd game.Command) {
	ev := m.player.Apply(m.ctx, cmd)
	switch ev.Kind {
	case game.EventRejected:
		if s, ok := messages[ev.Err]; ok {
			m.message = s
		} else {
			m.message = ev.Err.Error()
		}
	case game.EventWon:
		m.message = fmt.Sprintf("Výborně! %d/%d", ev.Result.Attempt, m.player.Session.Rows())
	case game.EventLost:
		m.message = "Hledané slovo: " + m.player.Session.Solution
	case game.EventUpdated, game.EventScored:
		m.message = ""
	}
}

func (m Model) View() string {
	s := m.player.Session
	tiles := palette(m.player.Settings.Contrast)

	var b strings.Builder
	title := "Wordle CZ"
	if s.Mode == game.ModePractice {
		title += " · procvičování"
	} else {
		title += fmt.Sprintf(" · %s (#%d)", s.SolutionDate, m.player.Puzzle.DayIndex)
	}
	b.WriteString(styleHeader.Render(title))
	b.WriteString("\n\n")

	for i, row := range s.Board {
		cells := make([]string, len(row))
		for j, c := range row {
			switch {
			case i < len(s.Evaluations):
				cells[j] = tiles[s.Evaluations[i][j]].Render(c)
			case c != "":
				cells[j] = styleTyped.Render(c)
			default:
				cells[j] = styleEmpty.Render("·")
			}
		}
		b.WriteString(" " + lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")
	}
	b.WriteString("\n")

	keys := s.KeyStates()
	for _, row := range keyboardRows {
		cells := make([]string, len(row))
		for j, k := range row {
			if f, ok := keys[k]; ok {
				cells[j] = tiles[f].Render(k)
			} else {
				cells[j] = styleTyped.Render(k)
			}
		}
		b.WriteString(" " + lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")
	}

	if m.message != "" {
		b.WriteString(styleMessage.Render(m.message))
		b.WriteString("\n")
	}
	b.WriteString(styleSubtle.Render("\n enter potvrdit · ⌫ smazat · ctrl+p procvičování · ctrl+r obnovit · ctrl+s sdílet · esc konec"))
	return b.String()
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(ctx context.Context, p *player.Player) error {
	_, err := tea.NewProgram(New(ctx, p, time.Now)).Run()
	return err
}
