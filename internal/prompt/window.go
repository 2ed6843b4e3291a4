package prompt

import "fmt"

// window is the scroll viewport for long option lists. Its size is bounded
// by the terminal height so repainting never pushes the region off screen.
type window struct {
	visible int
	scroll  int
}

func newWindow(total, termHeight int) window {
	visible := total
	if termHeight > 0 && visible > termHeight-4 {
		visible = termHeight - 4
	}
	if visible < 3 {
		visible = 3
	}
	if visible > total {
		visible = total
	}
	return window{visible: visible}
}

// follow keeps the highlighted row inside the viewport.
func (w *window) follow(highlighted int) {
	if highlighted < w.scroll {
		w.scroll = highlighted
	} else if highlighted >= w.scroll+w.visible {
		w.scroll = highlighted - w.visible + 1
	}
}

// navHint builds the dim help line, switching to a scroll counter when the
// list is longer than the viewport.
func navHint(total, visible, highlighted int, actions string) string {
	if total > visible {
		return fmt.Sprintf("↑↓ scroll (%d/%d)  %s", highlighted+1, total, actions)
	}
	return "↑↓ navigate  " + actions
}
