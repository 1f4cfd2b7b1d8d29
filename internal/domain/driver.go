package domain

// Driver represents a fleet driver.
type Driver struct {
	ID            string
	Name          string
	LicenseStatus LicenseStatus
	Status        DriverStatus
	SafetyScore   int // 0..100
}
