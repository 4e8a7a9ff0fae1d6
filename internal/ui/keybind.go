package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Keybind is a key binding, the command it runs, and the phases it is
// active in. A nil/empty Phases list means every phase.
type Keybind struct {
	Binding key.Binding
	Cmd     tea.Cmd
	Phases  []Phase
}

// KeybindRegistry maps keys to commands.
// Keys use tea.KeyMsg.String() notation: "left", "h", "ctrl+c", "enter".
type KeybindRegistry struct {
	binds []Keybind
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{}
}

// Bind registers keys to a command in all phases, without help text.
func (r *KeybindRegistry) Bind(keys []string, cmd tea.Cmd) {
	r.BindWithDescForPhase(keys, "", cmd, nil)
}

// BindWithDesc registers keys with a description for the help footer.
// The binding applies to all phases.
func (r *KeybindRegistry) BindWithDesc(keys []string, desc string, cmd tea.Cmd) {
	r.BindWithDescForPhase(keys, desc, cmd, nil)
}

// BindWithDescForPhase registers keys with a description and phase filter.
// The first key is shown in the help footer.
// Later bindings for the same key in an overlapping phase win.
func (r *KeybindRegistry) BindWithDescForPhase(keys []string, desc string, cmd tea.Cmd, phases []Phase) {
	if len(keys) == 0 {
		return
	}
	opts := []key.BindingOpt{key.WithKeys(keys...)}
	if desc != "" {
		opts = append(opts, key.WithHelp(keys[0], desc))
	}
	r.binds = append(r.binds, Keybind{
		Binding: key.NewBinding(opts...),
		Cmd:     cmd,
		Phases:  phases,
	})
}

// Lookup returns the command for a key in phase, or nil if not bound.
func (r *KeybindRegistry) Lookup(k string, phase Phase) tea.Cmd {
	for i := len(r.binds) - 1; i >= 0; i-- {
		b := r.binds[i]
		if !b.appliesTo(phase) {
			continue
		}
		for _, bk := range b.Binding.Keys() {
			if bk == k {
				return b.Cmd
			}
		}
	}
	return nil
}

// Bindings returns the bindings with help text active in phase, in
// registration order.
func (r *KeybindRegistry) Bindings(phase Phase) []key.Binding {
	var out []key.Binding
	for _, b := range r.binds {
		if b.Cmd == nil || !b.appliesTo(phase) || b.Binding.Help().Desc == "" {
			continue
		}
		out = append(out, b.Binding)
	}
	return out
}

func (b Keybind) appliesTo(phase Phase) bool {
	if len(b.Phases) == 0 {
		return true
	}
	for _, p := range b.Phases {
		if p == phase {
			return true
		}
	}
	return false
}

// KeyHandler dispatches key presses to the registry.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler for reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true, the key was bound in phase and should not be passed to views.
func (h *KeyHandler) Handle(msg tea.KeyMsg, phase Phase) (consumed bool, cmd tea.Cmd) {
	if h == nil || h.Registry == nil {
		return false, nil
	}
	if c := h.Registry.Lookup(msg.String(), phase); c != nil {
		return true, c
	}
	return false, nil
}

// DefaultKeybinds returns the kickview key map.
func DefaultKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	ready := []Phase{PhaseReady}
	reg.BindWithDescForPhase([]string{"left", "h", "p"}, "previous", msgCmd(PrevPageMsg{}), ready)
	reg.BindWithDescForPhase([]string{"right", "l", "n"}, "next", msgCmd(NextPageMsg{}), ready)
	reg.BindWithDescForPhase([]string{"home", "g"}, "first", msgCmd(FirstPageMsg{}), ready)
	reg.BindWithDescForPhase([]string{"end", "G"}, "last", msgCmd(LastPageMsg{}), ready)
	reg.BindWithDescForPhase([]string{"r", "enter"}, "retry", msgCmd(RetryMsg{}), []Phase{PhaseFailed})
	reg.BindWithDesc([]string{"q", "ctrl+c"}, "quit", tea.Quit)
	return reg
}

// KeyMap implements help.KeyMap for rendering the footer with bubbles/help.
type KeyMap struct {
	registry *KeybindRegistry
	phase    Phase
}

// NewKeyMap creates a KeyMap for the given registry and phase.
func NewKeyMap(registry *KeybindRegistry, phase Phase) help.KeyMap {
	return &KeyMap{registry: registry, phase: phase}
}

// ShortHelp returns bindings for the short help view.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	return km.registry.Bindings(km.phase)
}

// FullHelp returns a single column with the same bindings as ShortHelp.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
