package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/just-intonation/intone"
)

// configMsg delivers a reloaded config file into the UI event loop.
type configMsg struct {
	cfg *Config
}

type keyMap struct {
	PlayStop key.Binding
	Waveform key.Binding
	GainUp   key.Binding
	GainDown key.Binding
	Column   key.Binding
	Up       key.Binding
	Down     key.Binding
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	VolUp    key.Binding
	VolDown  key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PlayStop: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/stop")),
		Waveform: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "waveform")),
		GainUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "gain")),
		GainDown: key.NewBinding(key.WithKeys("-")),
		Column:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "column")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "select")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:     key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		VolUp:    key.NewBinding(key.WithKeys("]"), key.WithHelp("[/]", "voice volume")),
		VolDown:  key.NewBinding(key.WithKeys("[")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayStop, k.Waveform, k.GainUp, k.Column, k.Up, k.Add, k.Edit, k.VolUp, k.Delete, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

const (
	focusBases = iota
	focusVoices
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	focusedPane   = paneStyle.Copy().BorderForeground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	statusStyle   = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// model is the bubbletea model for the whole control surface.
type model struct {
	session *Session
	eng     *intone.Engine
	keys    keyMap
	help    help.Model
	input   textinput.Model

	focus    int
	baseSel  int
	voiceSel int
	editing  bool
	adding   bool
	status   string
}

func newUI(session *Session, eng *intone.Engine) model {
	input := textinput.New()
	input.CharLimit = 32
	input.Width = 24
	return model{
		session: session,
		eng:     eng,
		keys:    defaultKeyMap(),
		help:    help.New(),
		input:   input,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case configMsg:
		if err := m.session.Apply(msg.cfg); err != nil {
			m.status = err.Error()
		} else {
			m.status = "config reloaded"
		}
		m.clampSelection()
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.PlayStop):
		if m.eng.Playing() {
			m.eng.Stop()
		} else {
			m.eng.Play()
		}

	case key.Matches(msg, m.keys.Waveform):
		m.session.CycleWaveform()

	case key.Matches(msg, m.keys.GainUp):
		m.eng.SetGlobalGain(intone.NewGain(m.eng.GlobalGain().Value() + 0.5))
	case key.Matches(msg, m.keys.GainDown):
		m.eng.SetGlobalGain(intone.NewGain(m.eng.GlobalGain().Value() - 0.5))

	case key.Matches(msg, m.keys.Column):
		m.focus = (m.focus + 1) % 2

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)

	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.startEdit()
	case key.Matches(msg, m.keys.Edit):
		m.adding = false
		if m.focus == focusBases && len(m.session.Bases()) == 0 {
			break
		}
		if m.focus == focusVoices && len(m.session.Voices()) == 0 {
			break
		}
		m.startEdit()

	case key.Matches(msg, m.keys.Delete):
		if m.focus == focusBases {
			m.session.RemoveBase(m.baseSel)
		} else {
			m.session.RemoveVoice(m.voiceSel)
		}
		m.clampSelection()

	case key.Matches(msg, m.keys.VolUp):
		m.nudgeVolume(0.5)
	case key.Matches(msg, m.keys.VolDown):
		m.nudgeVolume(-0.5)
	}
	return m, nil
}

func (m model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.editing = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.editing = false
		m.input.Blur()
		if err := m.commitEdit(strings.TrimSpace(m.input.Value())); err != nil {
			m.status = err.Error()
		} else {
			m.status = ""
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) startEdit() {
	m.editing = true
	m.input.SetValue("")
	if m.focus == focusBases {
		m.input.Placeholder = "frequency in Hz, e.g. 220"
	} else {
		m.input.Placeholder = "base and ratio, e.g. 0 3:2"
	}
	m.input.Focus()
}

func (m *model) commitEdit(value string) error {
	if m.focus == focusBases {
		hz, err := strconv.ParseFloat(value, 32)
		if err != nil || hz <= 0 {
			return fmt.Errorf("expected a positive frequency, got %q", value)
		}
		if m.adding {
			m.baseSel = m.session.AddBase(float32(hz))
		} else {
			m.session.SetBase(m.baseSel, float32(hz))
		}
		return nil
	}

	var base int
	var num, den uint32
	if _, err := fmt.Sscanf(value, "%d %d:%d", &base, &num, &den); err != nil {
		return fmt.Errorf("expected \"base num:den\", got %q", value)
	}
	if base < 0 || base >= len(m.session.Bases()) {
		return fmt.Errorf("no base frequency %d", base)
	}
	if den == 0 {
		return fmt.Errorf("ratio denominator must not be zero")
	}
	if m.adding {
		m.session.AddVoice(base, intone.Ratio{Num: num, Den: den}, intone.NewGain(0))
		m.voiceSel = len(m.session.Voices()) - 1
	} else {
		m.session.SetVoice(m.voiceSel, base, intone.Ratio{Num: num, Den: den})
	}
	return nil
}

func (m *model) nudgeVolume(delta float32) {
	if m.focus != focusVoices || m.voiceSel >= len(m.session.Voices()) {
		return
	}
	v := m.session.Voices()[m.voiceSel]
	m.session.SetVoiceVolume(m.voiceSel, intone.Gain(v.Volume.Value()+delta))
}

func (m *model) moveSelection(delta int) {
	if m.focus == focusBases {
		m.baseSel += delta
	} else {
		m.voiceSel += delta
	}
	m.clampSelection()
}

func (m *model) clampSelection() {
	m.baseSel = max(0, min(m.baseSel, len(m.session.Bases())-1))
	m.voiceSel = max(0, min(m.voiceSel, len(m.session.Voices())-1))
}

func (m model) View() string {
	transport := "STOPPED"
	if m.eng.Playing() {
		transport = "PLAYING"
	}
	title := titleStyle.Render(fmt.Sprintf("intone  %s  wave:%s  gain:%+.1f",
		transport, m.session.Waveform(), m.eng.GlobalGain().Value()))

	var basesView strings.Builder
	basesView.WriteString("base frequencies\n")
	for i, b := range m.session.Bases() {
		line := fmt.Sprintf("%d: %.2f Hz", i, b.Hz)
		if m.focus == focusBases && i == m.baseSel {
			line = selectedStyle.Render(line)
		}
		basesView.WriteString(line + "\n")
	}

	var voicesView strings.Builder
	voicesView.WriteString("voices\n")
	for i, v := range m.session.Voices() {
		hz := m.session.PlayedHz(v)
		line := fmt.Sprintf("b%d × %s = %.2f Hz  %s  vol %+.1f",
			v.Base, v.Ratio, hz, intone.NoteFromFrequency(hz), v.Volume.Value())
		if m.focus == focusVoices && i == m.voiceSel {
			line = selectedStyle.Render(line)
		}
		voicesView.WriteString(line + "\n")
	}

	left, right := paneStyle, paneStyle
	if m.focus == focusBases {
		left = focusedPane
	} else {
		right = focusedPane
	}
	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		left.Render(basesView.String()),
		right.Render(voicesView.String()),
	)

	bottom := m.help.View(m.keys)
	if m.editing {
		bottom = m.input.View()
	} else if m.status != "" {
		bottom = statusStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, panes, bottom)
}
