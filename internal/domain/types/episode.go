package types

// Episode is one row of a series episode roster after type conversion.
type Episode struct {
	SeriesTitle      *string  `json:"series_title"`
	SeriesSeasonNum  *int     `json:"series_season_num"`
	SeriesEpisodeNum *int     `json:"series_episode_num"`
	SeasonEpisodeNum *int     `json:"season_episode_num"`
	Title            *string  `json:"episode_title"`
	Director         *string  `json:"episode_director"`
	Writers          []string `json:"episode_writers"`
	ReleaseDate      *string  `json:"episode_release_date"`
	ProdCode         *float64 `json:"episode_prod_code"`
	USViewersMM      *float64 `json:"episode_us_viewers_mm"`
}

// TitleOrEmpty returns the episode title, or "" when it is unknown.
func (e Episode) TitleOrEmpty() string {
	if e.Title == nil {
		return ""
	}
	return *e.Title
}
