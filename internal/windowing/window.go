// Package windowing clamps conversation history to the newest turns
// without splitting a tool-call exchange: an assistant turn that
// requested a tool and the tool-result turns answering it always travel
// together or not at all.
package windowing

// Turn is what windowing needs to know about one conversation turn.
type Turn interface {
	// StartsToolExchange reports whether this turn opens a group, i.e.
	// an assistant turn carrying tool-call descriptors.
	StartsToolExchange() bool
	// AnswersToolExchange reports whether this turn is a tool result
	// belonging to the exchange opened just before it.
	AnswersToolExchange() bool
}

// Group describes a contiguous span of turns [Start, End) that must be
// kept whole.
type Group struct {
	Start int // inclusive
	End   int // exclusive
}

// Stats summarizes a clamp decision.
type Stats struct {
	Turns           int // turns in the window
	Max             int // the limit applied
	IncludedGroups  int
	SkippedGroups   int
	OverLimitNewest bool // newest group alone exceeds Max
}

// GroupTurns partitions turns into atomic groups. An assistant turn that
// starts a tool exchange absorbs every immediately following tool-result
// turn; all other turns are singletons.
func GroupTurns[T Turn](turns []T) []Group {
	groups := make([]Group, 0, len(turns))
	for i := 0; i < len(turns); {
		end := i + 1
		if turns[i].StartsToolExchange() {
			for end < len(turns) && turns[end].AnswersToolExchange() {
				end++
			}
		}
		groups = append(groups, Group{Start: i, End: end})
		i = end
	}
	return groups
}

// Clamp returns the newest suffix of turns holding at most max turns,
// built from whole groups scanned newest to oldest. When the newest group
// alone exceeds max the window is empty and OverLimitNewest is set.
func Clamp[T Turn](turns []T, max int) ([]T, Stats) {
	if len(turns) == 0 {
		return nil, Stats{Max: max}
	}
	groups := GroupTurns(turns)
	if max <= 0 {
		return nil, Stats{Max: max, SkippedGroups: len(groups), OverLimitNewest: true}
	}

	total := 0
	included := 0
	start := len(turns)
	for gi := len(groups) - 1; gi >= 0; gi-- {
		g := groups[gi]
		size := g.End - g.Start
		if included == 0 && size > max {
			return nil, Stats{Max: max, SkippedGroups: len(groups), OverLimitNewest: true}
		}
		if total+size > max {
			break
		}
		total += size
		included++
		start = g.Start
	}

	return turns[start:], Stats{
		Turns:          total,
		Max:            max,
		IncludedGroups: included,
		SkippedGroups:  len(groups) - included,
	}
}
