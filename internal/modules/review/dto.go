package review

type CreateReviewRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"max=4000"`
}

type OwnerResponseRequest struct {
	Response string `json:"response" binding:"required,max=4000"`
}
