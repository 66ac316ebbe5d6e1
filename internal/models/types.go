package models

// Identity is the authenticated GitHub account the report is built for.
type Identity struct {
	Login string
	ID    string
}

// Repository is a non-fork repository the identity contributed to.
type Repository struct {
	Name  string
	Owner string
}

func (r Repository) String() string {
	return r.Owner + "/" + r.Name
}

type DaySegment int

const (
	Morning DaySegment = iota // 06:00 - 11:59
	Daytime                   // 12:00 - 17:59
	Evening                   // 18:00 - 23:59
	Night                     // 00:00 - 05:59
)

// Segments lists the day segments in report order.
var Segments = []DaySegment{Morning, Daytime, Evening, Night}

func (s DaySegment) String() string {
	switch s {
	case Morning:
		return "morning"
	case Daytime:
		return "daytime"
	case Evening:
		return "evening"
	case Night:
		return "night"
	}
	return "unknown"
}

// CommitCounts accumulates commits per day segment.
type CommitCounts struct {
	Morning int
	Daytime int
	Evening int
	Night   int
}

func (c *CommitCounts) Add(s DaySegment) {
	switch s {
	case Morning:
		c.Morning++
	case Daytime:
		c.Daytime++
	case Evening:
		c.Evening++
	case Night:
		c.Night++
	}
}

func (c CommitCounts) Get(s DaySegment) int {
	switch s {
	case Morning:
		return c.Morning
	case Daytime:
		return c.Daytime
	case Evening:
		return c.Evening
	case Night:
		return c.Night
	}
	return 0
}

func (c CommitCounts) Total() int {
	return c.Morning + c.Daytime + c.Evening + c.Night
}
