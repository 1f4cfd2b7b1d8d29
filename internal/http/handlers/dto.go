package handlers

// Response DTOs use the field names the SPA already binds to.

type vehicleDTO struct {
	ID              string  `json:"id"`
	Plate           string  `json:"plate"`
	Model           string  `json:"model"`
	MaxLoad         int     `json:"maxLoad"`
	AcquisitionCost float64 `json:"acquisitionCost"`
	Status          string  `json:"status"`
	Odometer        int     `json:"odometer"`
}

type driverDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	LicenseStatus string `json:"licenseStatus"`
	Status        string `json:"status"`
	SafetyScore   int    `json:"safetyScore"`
}

type tripDTO struct {
	ID          string  `json:"id"`
	VehicleID   string  `json:"vehicleId"`
	DriverID    string  `json:"driverId"`
	CargoWeight int     `json:"cargoWeight"`
	Revenue     float64 `json:"revenue"`
	Status      string  `json:"status"`
}

type maintenanceDTO struct {
	ID          string  `json:"id"`
	VehicleID   string  `json:"vehicleId"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	Date        string  `json:"date"` // YYYY-MM-DD
}

type expenseDTO struct {
	ID         string  `json:"id"`
	VehicleID  string  `json:"vehicleId"`
	FuelLiters float64 `json:"fuelLiters"`
	FuelCost   float64 `json:"fuelCost"`
}

type stateResponse struct {
	Vehicles     []vehicleDTO     `json:"vehicles"`
	Drivers      []driverDTO      `json:"drivers"`
	Trips        []tripDTO        `json:"trips"`
	Maintenances []maintenanceDTO `json:"maintenances"`
	Expenses     []expenseDTO     `json:"expenses"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createVehicleRequest struct {
	Plate           string  `json:"plate"`
	Model           string  `json:"model"`
	MaxLoad         int     `json:"maxLoad"`
	Odometer        int     `json:"odometer"`
	AcquisitionCost float64 `json:"acquisitionCost"`
}

type createTripRequest struct {
	VehicleID   string  `json:"vehicleId"`
	DriverID    string  `json:"driverId"`
	CargoWeight int     `json:"cargoWeight"`
	Revenue     float64 `json:"revenue"`
}

type createMaintenanceRequest struct {
	VehicleID   string  `json:"vehicleId"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	Date        string  `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
}

type createExpenseRequest struct {
	VehicleID  string  `json:"vehicleId"`
	FuelLiters float64 `json:"fuelLiters"`
	FuelCost   float64 `json:"fuelCost"`
}

type financeRowDTO struct {
	VehicleID       string  `json:"vehicleId"`
	Plate           string  `json:"plate"`
	Revenue         float64 `json:"revenue"`
	MaintenanceCost float64 `json:"maintenanceCost"`
	FuelCost        float64 `json:"fuelCost"`
	AcquisitionCost float64 `json:"acquisitionCost"`
	ROI             float64 `json:"roi"`
}

type financeReportResponse struct {
	FuelEfficiency float64         `json:"fuelEfficiency"`
	Vehicles       []financeRowDTO `json:"vehicles"`
}
