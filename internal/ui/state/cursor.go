package state

// MoveCursorUp moves the cursor one row up, stopping at the first row.
func (p *Pane) MoveCursorUp() bool {
	return p.moveCursorBy(-1)
}

// MoveCursorDown moves the cursor one row down, stopping at the last row.
func (p *Pane) MoveCursorDown() bool {
	return p.moveCursorBy(1)
}

// MoveCursorHome moves the cursor to the first row.
func (p *Pane) MoveCursorHome() bool {
	if len(p.Rows) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = 0
	return old != p.Cursor
}

// MoveCursorEnd moves the cursor to the last row.
func (p *Pane) MoveCursorEnd() bool {
	n := len(p.Rows)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = n - 1
	return old != p.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (p *Pane) MoveCursorPageUp(maxVisible int) bool {
	return p.moveCursorBy(-p.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (p *Pane) MoveCursorPageDown(maxVisible int) bool {
	return p.moveCursorBy(p.pageSize(maxVisible))
}

// MoveCursorTo places the cursor on idx when it is a valid row.
func (p *Pane) MoveCursorTo(idx int) bool {
	if idx < 0 || idx >= len(p.Rows) || idx == p.Cursor {
		return false
	}
	p.Cursor = idx
	return true
}

// Scroll shifts the viewport by delta rows without moving the cursor
// unless it would leave the view.
func (p *Pane) Scroll(delta, maxVisible int) bool {
	if len(p.Rows) == 0 || maxVisible <= 0 {
		return false
	}
	maxOffset := len(p.Rows) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	old := p.ViewportOffset
	p.ViewportOffset += delta
	if p.ViewportOffset < 0 {
		p.ViewportOffset = 0
	}
	if p.ViewportOffset > maxOffset {
		p.ViewportOffset = maxOffset
	}
	if p.Cursor < p.ViewportOffset {
		p.Cursor = p.ViewportOffset
	}
	if last := p.ViewportOffset + maxVisible - 1; p.Cursor > last {
		p.Cursor = last
	}
	return old != p.ViewportOffset
}

func (p *Pane) moveCursorBy(delta int) bool {
	if len(p.Rows) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	p.Cursor += delta
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Rows) {
		p.Cursor = len(p.Rows) - 1
	}
	return p.Cursor != old
}

func (p *Pane) pageSize(maxVisible int) int {
	total := len(p.Rows)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (p *Pane) EnsureCursorVisible(maxVisible int) {
	if len(p.Rows) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Rows) {
		p.Cursor = len(p.Rows) - 1
	}
	if maxVisible <= 0 {
		p.ViewportOffset = 0
		return
	}
	maxOffset := len(p.Rows) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.ViewportOffset > maxOffset {
		p.ViewportOffset = maxOffset
	}
	if p.ViewportOffset < 0 {
		p.ViewportOffset = 0
	}
	if p.Cursor < p.ViewportOffset {
		p.ViewportOffset = p.Cursor
	}
	upper := p.ViewportOffset + maxVisible - 1
	if p.Cursor > upper {
		p.ViewportOffset = p.Cursor - maxVisible + 1
		if p.ViewportOffset < 0 {
			p.ViewportOffset = 0
		}
		if p.ViewportOffset > maxOffset {
			p.ViewportOffset = maxOffset
		}
	}
}
