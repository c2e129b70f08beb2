package request

type ReviewRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid4"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=1000"`
}
