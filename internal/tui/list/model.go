package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// defaultPageStep is used for PgUp/PgDn before the first render has measured
// how many items fit on screen.
const defaultPageStep = 5

// RenderFunc renders the item at index. Rendered items may span several lines.
type RenderFunc[T any] func(item T, index int, selected bool) string

// VirtualListModel scrolls a list of multi-line items. Only the items that
// fit in the viewport are rendered on each View call.
type VirtualListModel[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	// selected is the cursor position (0-based).
	selected int

	// offset is the first rendered item.
	offset int

	// shown is how many items the last View rendered.
	shown int

	height int
	width  int
}

// NewVirtualListModel creates a list over items with a viewport of height rows.
func NewVirtualListModel[T any](items []T, height, width int, renderFunc RenderFunc[T]) *VirtualListModel[T] {
	return &VirtualListModel[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     height,
		width:      width,
	}
}

// Init implements tea.Model.
func (m *VirtualListModel[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and resize messages.
func (m *VirtualListModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

//nolint:exhaustive // Only navigation keys are handled.
func (m *VirtualListModel[T]) handleKeyMsg(msg tea.KeyMsg) {
	if len(m.items) == 0 {
		return
	}

	switch msg.Type {
	case tea.KeyUp:
		m.SetSelected(m.selected - 1)
	case tea.KeyDown:
		m.SetSelected(m.selected + 1)
	case tea.KeyPgUp:
		m.SetSelected(m.selected - m.pageStep())
	case tea.KeyPgDown:
		m.SetSelected(m.selected + m.pageStep())
	case tea.KeyHome:
		m.SetSelected(0)
	case tea.KeyEnd:
		m.SetSelected(len(m.items) - 1)
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return
		}
		switch msg.Runes[0] {
		case 'j':
			m.SetSelected(m.selected + 1)
		case 'k':
			m.SetSelected(m.selected - 1)
		case 'g':
			m.SetSelected(0)
		case 'G':
			m.SetSelected(len(m.items) - 1)
		}
	default:
	}
}

func (m *VirtualListModel[T]) pageStep() int {
	if m.shown > 1 {
		return m.shown - 1
	}
	return defaultPageStep
}

// View renders the items that fit in the viewport, keeping the selection visible.
func (m *VirtualListModel[T]) View() string {
	if len(m.items) == 0 || m.renderFunc == nil || m.height <= 0 {
		m.shown = 0
		return ""
	}

	rendered := make(map[int]string)
	render := func(i int) string {
		if s, ok := rendered[i]; ok {
			return s
		}
		s := m.renderFunc(m.items[i], i, i == m.selected)
		rendered[i] = s
		return s
	}

	if m.offset > m.selected {
		m.offset = m.selected
	}
	// Advance the window until the selected item ends inside the viewport.
	for m.offset < m.selected {
		lines := 0
		for i := m.offset; i <= m.selected; i++ {
			lines += lipgloss.Height(render(i))
		}
		if lines <= m.height {
			break
		}
		m.offset++
	}

	var out []string
	m.shown = 0
	for i := m.offset; i < len(m.items) && len(out) < m.height; i++ {
		lines := strings.Split(render(i), "\n")
		if room := m.height - len(out); len(lines) > room {
			lines = lines[:room]
		}
		out = append(out, lines...)
		m.shown++
	}

	return strings.Join(out, "\n")
}

// SetItems replaces the items, keeping the cursor in range.
func (m *VirtualListModel[T]) SetItems(items []T) {
	m.items = items
	m.SetSelected(m.selected)
	if m.offset > m.selected {
		m.offset = m.selected
	}
}

// SetRenderFunc replaces the item renderer.
func (m *VirtualListModel[T]) SetRenderFunc(fn RenderFunc[T]) {
	m.renderFunc = fn
}

// SetSize sets the viewport size in columns and rows.
func (m *VirtualListModel[T]) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ItemCount returns the total number of items in the list.
func (m *VirtualListModel[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the currently selected item index.
func (m *VirtualListModel[T]) Selected() int {
	return m.selected
}

// SetSelected moves the cursor, capping to valid bounds.
func (m *VirtualListModel[T]) SetSelected(index int) {
	switch {
	case len(m.items) == 0, index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}
	if m.offset > m.selected {
		m.offset = m.selected
	}
}

// Offset returns the first rendered item index.
func (m *VirtualListModel[T]) Offset() int {
	return m.offset
}

// Height returns the viewport height.
func (m *VirtualListModel[T]) Height() int {
	return m.height
}

// Width returns the viewport width.
func (m *VirtualListModel[T]) Width() int {
	return m.width
}

// GetSelectedItem returns the currently selected item, or nil when the list is empty.
func (m *VirtualListModel[T]) GetSelectedItem() *T {
	if len(m.items) == 0 || m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}
