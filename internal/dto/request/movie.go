package request

type MovieRequest struct {
	Title             string   `json:"title" validate:"required,min=1,max=255"`
	Description       string   `json:"description"`
	DurationInMinutes int      `json:"duration" validate:"required,min=1,max=999"`
	GenreIDs          []string `json:"genres,omitempty" validate:"dive,uuid4"`
	ActorIDs          []string `json:"actors,omitempty" validate:"dive,uuid4"`
}

// MovieUpdateRequest is the PATCH write model; nil fields stay unchanged.
type MovieUpdateRequest struct {
	Title             *string   `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description       *string   `json:"description,omitempty"`
	DurationInMinutes *int      `json:"duration,omitempty" validate:"omitempty,min=1,max=999"`
	GenreIDs          *[]string `json:"genres,omitempty" validate:"omitempty,dive,uuid4"`
	ActorIDs          *[]string `json:"actors,omitempty" validate:"omitempty,dive,uuid4"`
}
