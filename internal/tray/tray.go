// Package tray provides a system tray menu for pausing gesture control and
// quitting.
package tray

import (
	"fmt"
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the system tray menu.
type Tray struct {
	onToggle func(enabled bool)
	onQuit   func()
	enabled  bool
	percent  int
	mu       sync.RWMutex

	// Menu items stored for later updates
	menuToggle *systray.MenuItem
	menuVolume *systray.MenuItem
}

// New creates a new Tray instance with gesture control enabled.
func New() *Tray {
	return &Tray{
		enabled: true,
		percent: -1,
	}
}

// OnToggle sets the callback function to be called when the enabled state is toggled.
func (t *Tray) OnToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnQuit sets the callback function to be called when the quit menu item is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Start registers the tray without taking over the main thread; the
// window's event polling drives it.
func (t *Tray) Start() {
	systray.Register(t.onReady, func() {})
}

// Stop removes the tray icon.
func (t *Tray) Stop() {
	systray.Quit()
}

func (t *Tray) onReady() {
	systray.SetTitle("Mudra")
	systray.SetTooltip("Mudra gesture volume control")

	t.mu.Lock()
	t.menuToggle = systray.AddMenuItem(toggleTitle(t.enabled), "Pause or resume gesture control")
	systray.AddSeparator()
	t.menuVolume = systray.AddMenuItem(volumeTitle(t.percent), "Current output volume")
	t.menuVolume.Disable()
	t.mu.Unlock()

	systray.AddSeparator()
	menuQuit := systray.AddMenuItem("Quit", "Quit Mudra")

	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

// handleToggle flips the enabled state.
func (t *Tray) handleToggle() {
	t.mu.Lock()
	t.enabled = !t.enabled
	enabled := t.enabled

	if t.menuToggle != nil {
		t.menuToggle.SetTitle(toggleTitle(enabled))
	}

	callback := t.onToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(enabled)
	}
}

// handleQuit forwards the quit request; the owner stops the tray during
// teardown.
func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// SetVolume updates the volume menu entry.
func (t *Tray) SetVolume(percent int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.percent = percent
	if t.menuVolume != nil {
		t.menuVolume.SetTitle(volumeTitle(percent))
	}
}

// IsEnabled returns the current enabled state.
func (t *Tray) IsEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}

func toggleTitle(enabled bool) string {
	if enabled {
		return "● Gesture control on"
	}
	return "○ Gesture control paused"
}

func volumeTitle(percent int) string {
	if percent < 0 {
		return "Volume: -"
	}
	return fmt.Sprintf("Volume: %d %%", percent)
}
