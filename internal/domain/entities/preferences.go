package entities

import "time"

const (
	// DefaultDataSourceURL is the fallback quiz data endpoint used until the
	// user configures their own.
	DefaultDataSourceURL = "https://tednewardsandbox.site44.com/questions.json"

	// DefaultRefreshInterval is how often the topic list is re-fetched when
	// no interval was saved.
	DefaultRefreshInterval = 60 * time.Second
)

// Preferences holds the user-editable settings persisted across runs.
type Preferences struct {
	DataSourceURL   string
	RefreshInterval time.Duration
}

// DefaultPreferences returns the preferences used when nothing was saved yet.
func DefaultPreferences() Preferences {
	return Preferences{
		DataSourceURL:   DefaultDataSourceURL,
		RefreshInterval: DefaultRefreshInterval,
	}
}
