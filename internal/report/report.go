// Package report turns calendar values into command results that can be
// printed as text, JSON or YAML.
package report

import (
	"strconv"
	"strings"

	"github.com/username/when-exactly/pkg/calendar"
)

// Related is a granule of another kind that starts the described span.
type Related struct {
	Kind  string `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
}

// Description is the result of the describe command.
type Description struct {
	Kind     string    `json:"kind" yaml:"kind"`
	Value    string    `json:"value" yaml:"value"`
	Repr     string    `json:"repr" yaml:"repr"`
	Start    string    `json:"start" yaml:"start"`
	Stop     string    `json:"stop" yaml:"stop"`
	Previous string    `json:"previous,omitempty" yaml:"previous,omitempty"`
	Next     string    `json:"next,omitempty" yaml:"next,omitempty"`
	Weekend  *bool     `json:"weekend,omitempty" yaml:"weekend,omitempty"`
	Related  []Related `json:"related,omitempty" yaml:"related,omitempty"`
}

// Describe reports s together with its neighbours and the coarser granules
// that contain its start. Neighbours past the supported range are omitted.
func Describe(s calendar.Span) Description {
	d := Description{
		Kind:  s.Kind().String(),
		Value: s.String(),
		Repr:  s.GoString(),
		Start: s.Bounds().Start().String(),
		Stop:  s.Bounds().Stop().String(),
	}
	if prev, err := calendar.PreviousSpan(s); err == nil {
		d.Previous = prev.String()
	}
	if next, err := calendar.NextSpan(s); err == nil {
		d.Next = next.String()
	}
	if s.Kind().Level() == calendar.KindDay.Level() {
		if day, err := calendar.DayFromMoment(s.Bounds().Start()); err == nil {
			weekend := day.IsWeekend()
			d.Weekend = &weekend
		}
	}
	for _, kind := range calendar.Kinds() {
		if kind == s.Kind() || kind.Level() < s.Kind().Level() {
			continue
		}
		if related, err := calendar.Convert(s, kind); err == nil {
			d.Related = append(d.Related, Related{Kind: kind.String(), Value: related.String()})
		}
	}
	return d
}

func (d Description) fields() []field {
	fields := []field{
		{"kind", d.Kind},
		{"value", d.Value},
		{"repr", d.Repr},
		{"start", d.Start},
		{"stop", d.Stop},
	}
	if d.Previous != "" {
		fields = append(fields, field{"previous", d.Previous})
	}
	if d.Next != "" {
		fields = append(fields, field{"next", d.Next})
	}
	if d.Weekend != nil {
		fields = append(fields, field{"weekend", strconv.FormatBool(*d.Weekend)})
	}
	for _, r := range d.Related {
		fields = append(fields, field{r.Kind, r.Value})
	}
	return fields
}

// Listing is the result of the list command.
type Listing struct {
	Parent string   `json:"parent" yaml:"parent"`
	Kind   string   `json:"kind" yaml:"kind"`
	Count  int      `json:"count" yaml:"count"`
	Items  []string `json:"items" yaml:"items"`
}

// List enumerates the granules of kind that overlap parent. A positive limit
// caps the number of items.
func List(parent calendar.Span, kind calendar.Kind, limit int) (Listing, error) {
	children, err := calendar.Children(parent, kind, limit)
	if err != nil {
		return Listing{}, err
	}
	items := make([]string, len(children))
	for i, c := range children {
		items[i] = c.String()
	}
	return Listing{
		Parent: parent.String(),
		Kind:   kind.String(),
		Count:  len(items),
		Items:  items,
	}, nil
}

func (l Listing) fields() []field {
	return []field{
		{"parent", l.Parent},
		{"kind", l.Kind},
		{"count", strconv.Itoa(l.Count)},
		{"items", strings.Join(l.Items, " ")},
	}
}

// Shift is the result of the convert and step commands.
type Shift struct {
	From  string `json:"from" yaml:"from"`
	To    string `json:"to" yaml:"to"`
	Kind  string `json:"kind" yaml:"kind"`
	Steps int    `json:"steps,omitempty" yaml:"steps,omitempty"`
	Start string `json:"start" yaml:"start"`
	Stop  string `json:"stop" yaml:"stop"`
}

// Convert re-derives s as a granule of another kind.
func Convert(s calendar.Span, kind calendar.Kind) (Shift, error) {
	to, err := calendar.Convert(s, kind)
	if err != nil {
		return Shift{}, err
	}
	return newShift(s, to, 0), nil
}

// Step moves s by n granules of its own kind.
func Step(s calendar.Span, n int) (Shift, error) {
	to, err := calendar.Step(s, n)
	if err != nil {
		return Shift{}, err
	}
	return newShift(s, to, n), nil
}

func newShift(from, to calendar.Span, steps int) Shift {
	return Shift{
		From:  from.String(),
		To:    to.String(),
		Kind:  to.Kind().String(),
		Steps: steps,
		Start: to.Bounds().Start().String(),
		Stop:  to.Bounds().Stop().String(),
	}
}

func (s Shift) fields() []field {
	fields := []field{{"from", s.From}, {"to", s.To}, {"kind", s.Kind}}
	if s.Steps != 0 {
		fields = append(fields, field{"steps", strconv.Itoa(s.Steps)})
	}
	return append(fields, field{"start", s.Start}, field{"stop", s.Stop})
}

// Arithmetic is the result of the add command.
type Arithmetic struct {
	Moment string `json:"moment" yaml:"moment"`
	Delta  string `json:"delta" yaml:"delta"`
	Result string `json:"result" yaml:"result"`
}

// Add applies d to m, or subtracts it when subtract is set.
func Add(m calendar.Moment, d calendar.Delta, subtract bool) (Arithmetic, error) {
	if subtract {
		d = d.Negate()
	}
	result, err := m.Add(d)
	if err != nil {
		return Arithmetic{}, err
	}
	return Arithmetic{Moment: m.String(), Delta: d.String(), Result: result.String()}, nil
}

func (a Arithmetic) fields() []field {
	return []field{{"moment", a.Moment}, {"delta", a.Delta}, {"result", a.Result}}
}
