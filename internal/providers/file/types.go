package file

// calendarDoc is the on-disk YAML layout of a store calendar.
type calendarDoc struct {
	Profile  profileDoc    `yaml:"profile"`
	Hours    []dayDoc      `yaml:"hours"`
	Holidays []holidayDoc  `yaml:"holidays"`
	Closures *[]closureDoc `yaml:"closures"`
}

type profileDoc struct {
	Name         string       `yaml:"name"`
	Address      string       `yaml:"address"`
	PhoneDisplay string       `yaml:"phone_display"`
	PhoneTel     string       `yaml:"phone_tel"`
	MapsQuery    string       `yaml:"maps_query"`
	ReviewsURL   string       `yaml:"reviews_url"`
	LastUpdated  string       `yaml:"last_updated"`
	Specials     []specialDoc `yaml:"specials"`
}

type specialDoc struct {
	Enabled *bool  `yaml:"enabled"`
	Badge   string `yaml:"badge"`
	Title   string `yaml:"title"`
	Desc    string `yaml:"desc"`
}

type dayDoc struct {
	Day   string `yaml:"day"`
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

type holidayDoc struct {
	Date   string `yaml:"date"`
	Name   string `yaml:"name"`
	Scope  string `yaml:"scope"`
	Region string `yaml:"region"`
}

// closureDoc describes an annual closure: either month+day, or month+weekday+nth.
type closureDoc struct {
	Reason   string `yaml:"reason"`
	Note     string `yaml:"note"`
	Month    int    `yaml:"month"`
	Day      int    `yaml:"day"`
	Weekday  string `yaml:"weekday"`
	Nth      int    `yaml:"nth"`
	FromYear int    `yaml:"from_year"`
	ToYear   int    `yaml:"to_year"`
}
