package calendar

type Years struct{ Collection[Year] }

func NewYears(values []Year) Years     { return Years{newCollection("Years", values)} }
func (c Years) Slice(i, j int) Years   { return Years{c.Collection.Slice(i, j)} }
func (c Years) Equal(other Years) bool { return c.Collection.Equal(other.Collection) }

type Months struct{ Collection[Month] }

func NewMonths(values []Month) Months    { return Months{newCollection("Months", values)} }
func (c Months) Slice(i, j int) Months   { return Months{c.Collection.Slice(i, j)} }
func (c Months) Equal(other Months) bool { return c.Collection.Equal(other.Collection) }

type Weeks struct{ Collection[Week] }

func NewWeeks(values []Week) Weeks     { return Weeks{newCollection("Weeks", values)} }
func (c Weeks) Slice(i, j int) Weeks   { return Weeks{c.Collection.Slice(i, j)} }
func (c Weeks) Equal(other Weeks) bool { return c.Collection.Equal(other.Collection) }

type Weekdays struct{ Collection[Weekday] }

func NewWeekdays(values []Weekday) Weekdays  { return Weekdays{newCollection("Weekdays", values)} }
func (c Weekdays) Slice(i, j int) Weekdays   { return Weekdays{c.Collection.Slice(i, j)} }
func (c Weekdays) Equal(other Weekdays) bool { return c.Collection.Equal(other.Collection) }

type OrdinalDays struct{ Collection[OrdinalDay] }

func NewOrdinalDays(values []OrdinalDay) OrdinalDays {
	return OrdinalDays{newCollection("OrdinalDays", values)}
}
func (c OrdinalDays) Slice(i, j int) OrdinalDays   { return OrdinalDays{c.Collection.Slice(i, j)} }
func (c OrdinalDays) Equal(other OrdinalDays) bool { return c.Collection.Equal(other.Collection) }

type Days struct{ Collection[Day] }

func NewDays(values []Day) Days      { return Days{newCollection("Days", values)} }
func (c Days) Slice(i, j int) Days   { return Days{c.Collection.Slice(i, j)} }
func (c Days) Equal(other Days) bool { return c.Collection.Equal(other.Collection) }

// Months returns the distinct months the days fall in, in order.
func (c Days) Months() (Months, error) {
	months := make([]Month, 0, c.Len())
	for d := range c.All() {
		m, err := d.Month()
		if err != nil {
			return Months{}, err
		}
		months = append(months, m)
	}
	return NewMonths(months), nil
}

type Hours struct{ Collection[Hour] }

func NewHours(values []Hour) Hours     { return Hours{newCollection("Hours", values)} }
func (c Hours) Slice(i, j int) Hours   { return Hours{c.Collection.Slice(i, j)} }
func (c Hours) Equal(other Hours) bool { return c.Collection.Equal(other.Collection) }

type Minutes struct{ Collection[Minute] }

func NewMinutes(values []Minute) Minutes   { return Minutes{newCollection("Minutes", values)} }
func (c Minutes) Slice(i, j int) Minutes   { return Minutes{c.Collection.Slice(i, j)} }
func (c Minutes) Equal(other Minutes) bool { return c.Collection.Equal(other.Collection) }

type Seconds struct{ Collection[Second] }

func NewSeconds(values []Second) Seconds   { return Seconds{newCollection("Seconds", values)} }
func (c Seconds) Slice(i, j int) Seconds   { return Seconds{c.Collection.Slice(i, j)} }
func (c Seconds) Equal(other Seconds) bool { return c.Collection.Equal(other.Collection) }
