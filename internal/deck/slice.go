package deck

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/arcanaland/frenchdeck/internal/card"
)

// ErrZeroStep is returned for a range whose step is zero
var ErrZeroStep = errors.New("slice step cannot be zero")

// Range selects cards by start, stop and step. A nil bound is left open and
// defaults according to the direction of the step.
type Range struct {
	Start *int
	Stop  *int
	Step  *int
}

// ParseRange parses "start:stop:step" where every part is optional,
// e.g. ":3", "12::13" or "::-1".
func ParseRange(expr string) (Range, error) {
	parts := strings.Split(expr, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Range{}, fmt.Errorf("invalid range %q: want start:stop[:step]", expr)
	}

	bounds := make([]*int, 3)
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return Range{}, fmt.Errorf("invalid range %q: %v", expr, err)
		}
		bounds[i] = &v
	}

	r := Range{Start: bounds[0], Stop: bounds[1], Step: bounds[2]}
	if r.Step != nil && *r.Step == 0 {
		return Range{}, ErrZeroStep
	}
	return r, nil
}

func (r Range) String() string {
	format := func(p *int) string {
		if p == nil {
			return ""
		}
		return strconv.Itoa(*p)
	}
	return format(r.Start) + ":" + format(r.Stop) + ":" + format(r.Step)
}

// Slice returns the cards selected by r. Out of range bounds are clamped,
// so only a zero step is an error.
func (d *Deck) Slice(r Range) ([]card.Card, error) {
	start, stop, step, err := r.indices(len(d.cards))
	if err != nil {
		return nil, err
	}

	var out []card.Card
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, d.cards[i])
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, d.cards[i])
		}
	}
	return out, nil
}

// indices resolves r against a sequence of length n. For a negative step the
// returned stop may be -1, meaning "run past the first element".
func (r Range) indices(n int) (start, stop, step int, err error) {
	step = 1
	if r.Step != nil {
		step = *r.Step
	}
	if step == 0 {
		return 0, 0, 0, ErrZeroStep
	}

	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}

	clamp := func(p *int, def int) int {
		if p == nil {
			return def
		}
		v := *p
		if v < 0 {
			v += n
			if v < lower {
				v = lower
			}
		} else if v > upper {
			v = upper
		}
		return v
	}

	if step > 0 {
		return clamp(r.Start, lower), clamp(r.Stop, upper), step, nil
	}
	return clamp(r.Start, upper), clamp(r.Stop, lower), step, nil
}
