package assemble

import "holocron/internal/domain"

// Episode converts one roster row.
func (a *Assembler) Episode(rec domain.Record) domain.Episode {
	f := a.fields("episode", rec)
	return domain.Episode{
		SeriesTitle:      f.str("series_title"),
		SeriesSeasonNum:  f.integer("series_season_num"),
		SeriesEpisodeNum: f.integer("series_episode_num"),
		SeasonEpisodeNum: f.integer("season_episode_num"),
		Title:            f.str("episode_title"),
		Director:         f.str("episode_director"),
		Writers:          f.list("episode_writers", ", "),
		ReleaseDate:      f.str("episode_release_date"),
		ProdCode:         f.float("episode_prod_code"),
		USViewersMM:      f.float("episode_us_viewers_mm"),
	}
}

// Episodes converts every roster row, preserving order.
func (a *Assembler) Episodes(recs []domain.Record) []domain.Episode {
	out := make([]domain.Episode, 0, len(recs))
	for _, rec := range recs {
		out = append(out, a.Episode(rec))
	}
	return out
}
