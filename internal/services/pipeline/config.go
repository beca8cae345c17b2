package pipeline

// Inputs names the supplement files read from the data directory.
type Inputs struct {
	Episodes  string `yaml:"episodes"`
	Planets   string `yaml:"planets"`
	Starships string `yaml:"starships"`
	People    string `yaml:"people"`
	Droids    string `yaml:"droids"`
}

// Outputs names the artifacts written to the output directory.
type Outputs struct {
	Episodes       string `yaml:"episodes"`
	DirectorCounts string `yaml:"director_counts"`
	WriterEpisodes string `yaml:"writer_episodes"`
	Planet         string `yaml:"planet"`
	Droid          string `yaml:"droid"`
	Person         string `yaml:"person"`
	Starship       string `yaml:"starship"`
}

// Seat puts the SWAPI person at Ref into a crew role.
type Seat struct {
	Role string `yaml:"role"`
	Ref  string `yaml:"ref"`
}

// StarshipTarget selects a starship row by name and who boards it.
type StarshipTarget struct {
	Name       string   `yaml:"name"`
	Crew       []Seat   `yaml:"crew"`
	Passengers []string `yaml:"passengers"`
}

// Targets are the SWAPI references each entity step enriches.
type Targets struct {
	Planet   string         `yaml:"planet"`
	Droid    string         `yaml:"droid"`
	Person   string         `yaml:"person"`
	Starship StarshipTarget `yaml:"starship"`
}

// Config is the pipeline section of the application config.
type Config struct {
	Inputs  Inputs  `yaml:"inputs"`
	Outputs Outputs `yaml:"outputs"`
	Targets Targets `yaml:"targets"`
}

// DefaultConfig reproduces the classic run: Tatooine, R2-D2, Anakin
// Skywalker and the Twilight.
func DefaultConfig() Config {
	return Config{
		Inputs: Inputs{
			Episodes:  "clone_wars_episodes.csv",
			Planets:   "wookieepedia_planets.csv",
			Starships: "wookieepedia_starships.csv",
			People:    "wookieepedia_people.json",
			Droids:    "wookieepedia_droids.json",
		},
		Outputs: Outputs{
			Episodes:       "clone_wars-episodes_converted.json",
			DirectorCounts: "clone_wars-director_episode_counts.json",
			WriterEpisodes: "clone_wars-writer_episodes.json",
			Planet:         "tatooine.json",
			Droid:          "r2_d2.json",
			Person:         "anakin_skywalker.json",
			Starship:       "twilight.json",
		},
		Targets: Targets{
			Planet:   "planets/1/",
			Droid:    "people/3/",
			Person:   "people/11/",
			Starship: StarshipTarget{Name: "Twilight"},
		},
	}
}
