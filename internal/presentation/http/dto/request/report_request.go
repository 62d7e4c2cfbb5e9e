package request

// SalesReportRequest represents sales report query parameters
type SalesReportRequest struct {
	Period    string `form:"period" binding:"omitempty,oneof=daily monthly yearly"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// DailyReportRequest represents daily report query parameters
type DailyReportRequest struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}
