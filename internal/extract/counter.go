package extract

import "sort"

type Frequency struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Counter counts token occurrences while remembering first-seen order, so
// TopN can break ties deterministically.
type Counter struct {
	counts map[string]int
	order  []string
}

func NewCounter() *Counter {
	return &Counter{counts: map[string]int{}}
}

func (c *Counter) Add(name string) {
	if c == nil || name == "" {
		return
	}
	if _, ok := c.counts[name]; !ok {
		c.order = append(c.order, name)
	}
	c.counts[name]++
}

func (c *Counter) AddAll(names []string) {
	for _, n := range names {
		c.Add(n)
	}
}

func (c *Counter) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// TopN returns at most n entries ordered by descending count; equal counts
// keep first-seen order (stable sort over insertion order).
func (c *Counter) TopN(n int) []Frequency {
	if c == nil || n <= 0 {
		return []Frequency{}
	}

	out := make([]Frequency, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, Frequency{Name: name, Count: c.counts[name]})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}
