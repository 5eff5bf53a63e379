package model

// TMDB payloads are snake_case on the wire and are re-serialized unchanged
// inside the response envelope, the way the web client already consumes them.

type TmdbMovie struct {
	Id               int     `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	PosterPath       *string `json:"poster_path"`
	BackdropPath     *string `json:"backdrop_path"`
	ReleaseDate      *string `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	GenreIds         []int   `json:"genre_ids"`
	Adult            bool    `json:"adult"`
	OriginalLanguage string  `json:"original_language"`
}

type TmdbMovieListRes struct {
	Page         int         `json:"page"`
	Results      []TmdbMovie `json:"results"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int         `json:"total_results"`
}

type TmdbMovieDetails struct {
	TmdbMovie
	Genres              []TmdbGenre             `json:"genres"`
	Runtime             *int                    `json:"runtime"`
	Budget              int64                   `json:"budget"`
	Revenue             int64                   `json:"revenue"`
	Status              string                  `json:"status"`
	Tagline             *string                 `json:"tagline"`
	Homepage            *string                 `json:"homepage"`
	ImdbId              *string                 `json:"imdb_id"`
	ProductionCompanies []TmdbProductionCompany `json:"production_companies"`
	Credits             *TmdbCredits            `json:"credits,omitempty"`
	Videos              *TmdbVideoResults       `json:"videos,omitempty"`
}

type TmdbTvShow struct {
	Id               int      `json:"id"`
	Name             string   `json:"name"`
	OriginalName     string   `json:"original_name"`
	Overview         string   `json:"overview"`
	PosterPath       *string  `json:"poster_path"`
	BackdropPath     *string  `json:"backdrop_path"`
	FirstAirDate     *string  `json:"first_air_date"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int      `json:"vote_count"`
	Popularity       float64  `json:"popularity"`
	GenreIds         []int    `json:"genre_ids"`
	OriginCountry    []string `json:"origin_country"`
	OriginalLanguage string   `json:"original_language"`
}

type TmdbTvListRes struct {
	Page         int          `json:"page"`
	Results      []TmdbTvShow `json:"results"`
	TotalPages   int          `json:"total_pages"`
	TotalResults int          `json:"total_results"`
}

type TmdbTvShowDetails struct {
	TmdbTvShow
	Genres              []TmdbGenre             `json:"genres"`
	EpisodeRunTime      []int                   `json:"episode_run_time"`
	NumberOfEpisodes    int                     `json:"number_of_episodes"`
	NumberOfSeasons     int                     `json:"number_of_seasons"`
	Seasons             []TmdbSeason            `json:"seasons"`
	Status              string                  `json:"status"`
	Tagline             *string                 `json:"tagline"`
	Homepage            *string                 `json:"homepage"`
	LastAirDate         *string                 `json:"last_air_date"`
	InProduction        bool                    `json:"in_production"`
	Networks            []TmdbNetwork           `json:"networks"`
	ProductionCompanies []TmdbProductionCompany `json:"production_companies"`
	Credits             *TmdbCredits            `json:"credits,omitempty"`
	Videos              *TmdbVideoResults       `json:"videos,omitempty"`
}

type TmdbSeason struct {
	Id           int     `json:"id"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	AirDate      *string `json:"air_date"`
	EpisodeCount int     `json:"episode_count"`
	SeasonNumber int     `json:"season_number"`
}

type TmdbSeasonDetails struct {
	TmdbSeason
	Episodes []TmdbEpisode `json:"episodes"`
}

type TmdbEpisode struct {
	Id            int     `json:"id"`
	Name          string  `json:"name"`
	Overview      string  `json:"overview"`
	StillPath     *string `json:"still_path"`
	AirDate       *string `json:"air_date"`
	EpisodeNumber int     `json:"episode_number"`
	SeasonNumber  int     `json:"season_number"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	Runtime       *int    `json:"runtime"`
}

type TmdbGenre struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type TmdbGenreListRes struct {
	Genres []TmdbGenre `json:"genres"`
}

type TmdbNetwork struct {
	Id            int     `json:"id"`
	Name          string  `json:"name"`
	LogoPath      *string `json:"logo_path"`
	OriginCountry string  `json:"origin_country"`
}

type TmdbProductionCompany struct {
	Id            int     `json:"id"`
	Name          string  `json:"name"`
	LogoPath      *string `json:"logo_path"`
	OriginCountry string  `json:"origin_country"`
}

type TmdbCredits struct {
	Cast []TmdbCastMember `json:"cast"`
	Crew []TmdbCrewMember `json:"crew"`
}

type TmdbCastMember struct {
	Id          int     `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profile_path"`
	Order       int     `json:"order"`
}

type TmdbCrewMember struct {
	Id          int     `json:"id"`
	Name        string  `json:"name"`
	Job         string  `json:"job"`
	Department  string  `json:"department"`
	ProfilePath *string `json:"profile_path"`
}

type TmdbVideoResults struct {
	Results []TmdbVideo `json:"results"`
}

type TmdbVideo struct {
	Id       string `json:"id"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

// TmdbMultiResult carries mixed movie/tv/person rows from multi search and
// trending, media_type discriminates.
type TmdbMultiResult struct {
	Id           int     `json:"id"`
	MediaType    string  `json:"media_type"`
	Title        *string `json:"title,omitempty"`
	Name         *string `json:"name,omitempty"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	ProfilePath  *string `json:"profile_path"`
	ReleaseDate  *string `json:"release_date,omitempty"`
	FirstAirDate *string `json:"first_air_date,omitempty"`
	VoteAverage  float64 `json:"vote_average"`
	Popularity   float64 `json:"popularity"`
}

type TmdbMultiSearchRes struct {
	Page         int               `json:"page"`
	Results      []TmdbMultiResult `json:"results"`
	TotalPages   int               `json:"total_pages"`
	TotalResults int               `json:"total_results"`
}

type TmdbTrendingRes struct {
	Page         int               `json:"page"`
	Results      []TmdbMultiResult `json:"results"`
	TotalPages   int               `json:"total_pages"`
	TotalResults int               `json:"total_results"`
}
