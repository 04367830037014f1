package models

import "strings"

// AttendanceStatus is the closed set of attendance marks. Only Present
// earns pay.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
	StatusHalfDay AttendanceStatus = "Half Day"
	StatusLeave   AttendanceStatus = "Leave"
)

// ParseAttendanceStatus matches a status case-insensitively and returns
// its canonical spelling. Unrecognized values are rejected rather than
// treated as "not present".
func ParseAttendanceStatus(s string) (AttendanceStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "present":
		return StatusPresent, true
	case "absent":
		return StatusAbsent, true
	case "half day", "halfday":
		return StatusHalfDay, true
	case "leave":
		return StatusLeave, true
	}
	return "", false
}

// PaymentType is the closed set of payment kinds that participate in
// finance aggregation.
type PaymentType string

const (
	PaymentSalary  PaymentType = "Salary"
	PaymentAdvance PaymentType = "Advance"
)

// ParsePaymentType matches a payment type case-insensitively and returns
// its canonical spelling
func ParsePaymentType(s string) (PaymentType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "salary":
		return PaymentSalary, true
	case "advance":
		return PaymentAdvance, true
	}
	return "", false
}
