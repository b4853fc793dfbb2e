package dailyreport

type ReportStatus string

const (
	ReportStatusSubmitted ReportStatus = "SUBMITTED"
	ReportStatusWithdrawn ReportStatus = "WITHDRAWN"
)
