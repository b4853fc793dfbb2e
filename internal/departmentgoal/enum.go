package departmentgoal

type GoalStatus string

const (
	GoalStatusActive   GoalStatus = "ACTIVE"
	GoalStatusInactive GoalStatus = "INACTIVE"
)
