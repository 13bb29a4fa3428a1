package stardodge

// dispatchSystem delivers pending GameOverEvents to every listener and
// updates the score watch.
func dispatchSystem(w *World, _ *Input) {
	for _, l := range w.listeners {
		for _, ev := range w.Bus.Drain(l.id) {
			l.fn(ev)
		}
	}
	w.Bus.dropUnobserved()

	w.frame.Score, w.frame.ScoreChanged = w.watch.Observe(w.Score)
}
