package domain

type AssignmentStats struct {
	Pending         int64 `json:"pending"`
	Assigned        int64 `json:"assigned"`
	UniqueCustomers int64 `json:"unique_customers"`
	Minutes         int   `json:"minutes"`
}

type StatsRequest struct {
	Minutes int `query:"minutes"`
}
