package response

import (
	"cinema-api/internal/data/entity"
)

// MovieResponse is the summary projection: related genres and actors are
// flattened to display names.
type MovieResponse struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	DurationInMinutes int      `json:"duration"`
	ImageURL          *string  `json:"image,omitempty"`
	Genres            []string `json:"genres"`
	Actors            []string `json:"actors"`
}

// MovieDetailResponse nests full genre and actor objects.
type MovieDetailResponse struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	DurationInMinutes int             `json:"duration"`
	ImageURL          *string         `json:"image,omitempty"`
	Genres            []GenreResponse `json:"genres"`
	Actors            []ActorResponse `json:"actors"`
}

func MovieToResponse(movie *entity.Movie, genres []*entity.Genre, actors []*entity.Actor) MovieResponse {
	genreNames := make([]string, len(genres))
	for i, g := range genres {
		genreNames[i] = g.Name
	}

	actorNames := make([]string, len(actors))
	for i, a := range actors {
		actorNames[i] = a.FullName()
	}

	return MovieResponse{
		ID:                movie.ID.String(),
		Title:             movie.Title,
		Description:       movie.Description,
		DurationInMinutes: movie.DurationInMinutes,
		ImageURL:          movie.ImageURL,
		Genres:            genreNames,
		Actors:            actorNames,
	}
}

func MovieToDetailResponse(movie *entity.Movie, genres []*entity.Genre, actors []*entity.Actor) MovieDetailResponse {
	genreResponses := make([]GenreResponse, len(genres))
	for i, g := range genres {
		genreResponses[i] = GenreToResponse(g)
	}

	actorResponses := make([]ActorResponse, len(actors))
	for i, a := range actors {
		actorResponses[i] = ActorToResponse(a)
	}

	return MovieDetailResponse{
		ID:                movie.ID.String(),
		Title:             movie.Title,
		Description:       movie.Description,
		DurationInMinutes: movie.DurationInMinutes,
		ImageURL:          movie.ImageURL,
		Genres:            genreResponses,
		Actors:            actorResponses,
	}
}
