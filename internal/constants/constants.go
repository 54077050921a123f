package constants

// TasksPerPage is the fixed page size of the task listing.
const TasksPerPage = 10

const (
	FilterAll       = "all"
	FilterCompleted = "completed"
)

const (
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"
)

const (
	FlashDriverRedis  = "redis"
	FlashDriverMemory = "memory"
)

// Echo context keys set by the middlewares.
const (
	OwnerIDContextKey   = "owner_id"
	SessionIDContextKey = "session_id"
)
