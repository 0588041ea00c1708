package response

type DashboardResponse struct {
	Categories CategoriesResponse `json:"categories"`
	Bookings   BookingsResponse   `json:"bookings"`
}
