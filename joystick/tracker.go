package joystick

// trackInput decides whether a pointer session starts, continues or ends this
// frame. Call once per frame, before any other stage.
func (j *Joystick[I]) trackInput(in InputProvider) {
	s := &j.state
	s.JustReleased = false
	if s.Pointer != nil {
		s.Pointer.JustPressed = false
	}

	if s.Pointer == nil {
		j.releaseRequested = false

		rect, ok := j.interactionRect()
		if !ok {
			// no geometry yet, nothing can be claimed
			return
		}

		for _, touch := range in.TouchPoints() {
			if RectContains(rect, touch.Position) {
				s.Pointer = &PointerState{
					ID:          touch.ID,
					Start:       touch.Position,
					Current:     touch.Position,
					JustPressed: true,
				}
				return
			}
		}

		if in.IsMouseButtonPressed(PrimaryButton) {
			pos := in.GetMousePosition()
			if RectContains(rect, pos) {
				s.Pointer = &PointerState{
					ID:          MousePointerID,
					IsMouse:     true,
					Start:       pos,
					Current:     pos,
					JustPressed: true,
				}
			}
		}
		return
	}

	// A session is active; other pointers are ignored until it ends.
	var pos V2
	var held bool
	if s.Pointer.IsMouse {
		pos, held = in.GetMousePosition(), in.IsMouseButtonDown(PrimaryButton)
	} else {
		pos, held = findTouch(in, s.Pointer.ID)
	}

	if !held || j.releaseRequested {
		j.releaseRequested = false
		s.Pointer = nil
		s.JustReleased = true
		return
	}

	if pos != s.Pointer.Current {
		s.Pointer.Current = pos
	}
}
