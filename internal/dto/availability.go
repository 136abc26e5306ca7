package dto

// AvailabilityRequest carries one "HH:mm-HH:mm" range per day.
type AvailabilityRequest struct {
	ID             string            `json:"id" binding:"required"`
	Availabilities map[string]string `json:"availabilities" binding:"required"`
}

type DeleteAvailabilityRequest struct {
	ID  string `json:"id" binding:"required"`
	Day string `json:"day" binding:"required"`
}

type AvailabilityQuery struct {
	ID string `form:"id" binding:"required"`
}

type AvailabilityIntervalQuery struct {
	ID        string `form:"id" binding:"required"`
	StartDate string `form:"startDate" binding:"required"`
	EndDate   string `form:"endDate" binding:"required"`
}

type BookSessionRequest struct {
	ID   string `json:"id" binding:"required"`
	Day  string `json:"day" binding:"required"`
	Hour string `json:"hour" binding:"required"`
}
