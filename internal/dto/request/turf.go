package request

type TurfRequest struct {
	OwnerID          string  `json:"owner_id" validate:"required,uuid4"`
	Name             string  `json:"name" validate:"required,min=1,max=100"`
	Address          string  `json:"address" validate:"required,min=1,max=200"`
	City             string  `json:"city" validate:"required,min=1,max=100"`
	Description      string  `json:"description" validate:"max=2000"`
	BasePricePerHour float64 `json:"base_price_per_hour" validate:"required,gt=0"`
}

type TurfUpdateRequest struct {
	Name             *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Address          *string  `json:"address,omitempty" validate:"omitempty,min=1,max=200"`
	City             *string  `json:"city,omitempty" validate:"omitempty,min=1,max=100"`
	Description      *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	BasePricePerHour *float64 `json:"base_price_per_hour,omitempty" validate:"omitempty,gt=0"`
}

type DeleteTurfPhotoRequest struct {
	PhotoURL string `json:"photo_url" validate:"required,url"`
}
