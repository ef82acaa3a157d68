package attendance

import "time"

// Status is the closed set of per-day attendance outcomes. It is derived,
// never stored: every status must be recomputable from the underlying
// check events, approved requests, and calendar decision.
type Status string

const (
	StatusHadir        Status = "hadir"         // present, on time
	StatusTerlambat    Status = "terlambat"     // present, late
	StatusIzin         Status = "izin"          // approved personal permit
	StatusSakit        Status = "sakit"         // approved sick leave
	StatusCuti         Status = "cuti"          // approved annual leave
	StatusDinasLuar    Status = "dinas_luar"    // on assigned business trip
	StatusMangkirAlpha Status = "mangkir_alpha" // unexcused absence
	StatusNonWorking   Status = "non_working"   // weekend or holiday, no attendance semantics
	StatusNotYetDue    Status = "not_yet_due"   // working day not yet past its start
)

// Anomaly flags evidentiary records that need admin review. Flagged records
// are retained, never discarded.
type Anomaly string

const (
	AnomalyOutsideRadius        Anomaly = "outside_radius"
	AnomalyNoRegisteredLocation Anomaly = "no_registered_location"
	AnomalyCheckInOnLeave       Anomaly = "check_in_on_leave"
	AnomalyCheckInNonWorkingDay Anomaly = "check_in_non_working_day"
)

// DayStatus is the authoritative classification of one (employee, date).
// EarlyLeave ("pulang cepat") is an overlay, not exclusive with
// hadir/terlambat: "terlambat + pulang cepat" is representable.
type DayStatus struct {
	EmployeeID        string
	Date              time.Time
	Status            Status
	EarlyLeave        bool
	LateMinutes       int
	EarlyLeaveMinutes int
	Anomalies         []Anomaly
}

// Attendance is the stored evidentiary record of a day's check events.
// It carries the geofence verdicts and anomaly flags captured at recording
// time; it never carries a derived status.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time

	ClockIn           *time.Time
	ClockInLatitude   *float64
	ClockInLongitude  *float64
	ClockInProofURL   *string
	ClockInDistanceM  *float64
	MatchedLocationID *string

	ClockOut          *time.Time
	ClockOutLatitude  *float64
	ClockOutLongitude *float64
	ClockOutProofURL  *string

	// Location anomaly recorded at check-in, if any:
	// outside_radius or no_registered_location.
	LocationAnomaly *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Join
	EmployeeName     *string
	EmployeePosition *string
}
