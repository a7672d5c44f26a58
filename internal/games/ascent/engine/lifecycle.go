package engine

// reclaim drops platforms, coins and hazards that scrolled more than margin
// below the visible window. Slices are compacted in place.
func reclaim(w *World, margin float64) {
	limit := w.bottomEdge() + margin

	platforms := w.Platforms[:0]
	for _, p := range w.Platforms {
		if p.Y < limit {
			platforms = append(platforms, p)
		}
	}
	w.Platforms = platforms

	coins := w.Coins[:0]
	for _, c := range w.Coins {
		if c.Y < limit {
			coins = append(coins, c)
		}
	}
	w.Coins = coins

	hazards := w.Hazards[:0]
	for _, h := range w.Hazards {
		if h.Y < limit {
			hazards = append(hazards, h)
		}
	}
	w.Hazards = hazards
}
