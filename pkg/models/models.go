package models

// User is a row in the users table. The row is created lazily on first
// contact and never updated afterwards.
type User struct {
	UID       string `db:"uid" json:"uid"`
	Balance   int64  `db:"balance" json:"balance"`
	Role      string `db:"role" json:"role"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

// Task is a row in the tasks table. Tasks are seeded out of band; only
// rows with status "active" are ever listed.
type Task struct {
	ID     int64  `db:"id" json:"id"`
	Title  string `db:"title" json:"title"`
	Reward int64  `db:"reward" json:"reward"`
	Status string `db:"status" json:"status"`
}

const TaskStatusActive = "active"
