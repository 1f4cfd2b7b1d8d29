package handlers

import (
	"time"

	"fleetflow/internal/domain"
	"fleetflow/internal/service/reports"
)

const dateLayout = "2006-01-02"

func stateToResponse(st *domain.FleetState) stateResponse {
	out := stateResponse{
		Vehicles:     make([]vehicleDTO, 0, len(st.Vehicles)),
		Drivers:      make([]driverDTO, 0, len(st.Drivers)),
		Trips:        make([]tripDTO, 0, len(st.Trips)),
		Maintenances: make([]maintenanceDTO, 0, len(st.Maintenances)),
		Expenses:     make([]expenseDTO, 0, len(st.Expenses)),
	}
	for _, v := range st.Vehicles {
		out.Vehicles = append(out.Vehicles, vehicleDTO{
			ID:              v.ID,
			Plate:           v.Plate,
			Model:           v.Model,
			MaxLoad:         v.MaxLoad,
			AcquisitionCost: v.AcquisitionCost,
			Status:          string(v.Status),
			Odometer:        v.Odometer,
		})
	}
	for _, d := range st.Drivers {
		out.Drivers = append(out.Drivers, driverDTO{
			ID:            d.ID,
			Name:          d.Name,
			LicenseStatus: string(d.LicenseStatus),
			Status:        string(d.Status),
			SafetyScore:   d.SafetyScore,
		})
	}
	for _, t := range st.Trips {
		out.Trips = append(out.Trips, tripDTO{
			ID:          t.ID,
			VehicleID:   t.VehicleID,
			DriverID:    t.DriverID,
			CargoWeight: t.CargoWeight,
			Revenue:     t.Revenue,
			Status:      string(t.Status),
		})
	}
	for _, m := range st.Maintenances {
		out.Maintenances = append(out.Maintenances, maintenanceDTO{
			ID:          m.ID,
			VehicleID:   m.VehicleID,
			Description: m.Description,
			Cost:        m.Cost,
			Date:        m.Date.Format(dateLayout),
		})
	}
	for _, e := range st.Expenses {
		out.Expenses = append(out.Expenses, expenseDTO{
			ID:         e.ID,
			VehicleID:  e.VehicleID,
			FuelLiters: e.FuelLiters,
			FuelCost:   e.FuelCost,
		})
	}
	return out
}

func userToResponse(u *domain.User) userResponse {
	return userResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}

func reportToResponse(r *reports.FinanceReport) financeReportResponse {
	out := financeReportResponse{
		FuelEfficiency: r.FuelEfficiency,
		Vehicles:       make([]financeRowDTO, 0, len(r.Vehicles)),
	}
	for _, v := range r.Vehicles {
		out.Vehicles = append(out.Vehicles, financeRowDTO{
			VehicleID:       v.VehicleID,
			Plate:           v.Plate,
			Revenue:         v.Revenue,
			MaintenanceCost: v.MaintenanceCost,
			FuelCost:        v.FuelCost,
			AcquisitionCost: v.AcquisitionCost,
			ROI:             v.ROI,
		})
	}
	return out
}
