package reports

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"fleetflow/internal/domain"
)

// VehicleFinance is the per-asset financial line of the report.
type VehicleFinance struct {
	VehicleID       string
	Plate           string
	Revenue         float64
	MaintenanceCost float64
	FuelCost        float64
	AcquisitionCost float64
	ROI             float64
}

// FinanceReport aggregates asset-level ROI and fleet fuel efficiency.
type FinanceReport struct {
	FuelEfficiency float64 // km per liter across the fleet, 0 when no fuel logged
	Vehicles       []VehicleFinance
}

// Service derives financial reports from the aggregate state. Only Completed
// trips count toward revenue; maintenance and fuel costs count in full.
type Service struct {
	state            stateRepository
	operationTimeout time.Duration
}

// NewService creates and configures a reports Service.
func NewService(state stateRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{state: state, operationTimeout: timeout}
}

// Finance builds the finance report from the current snapshot.
func (s *Service) Finance(ctx context.Context) (*FinanceReport, error) {
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	st, err := s.state.State(ctx)
	if err != nil {
		return nil, err
	}
	return Build(st), nil
}

// Build computes the report from a snapshot. Split out so it can be checked
// without storage.
func Build(st *domain.FleetState) *FinanceReport {
	revenue := make(map[string]float64)
	for _, t := range st.Trips {
		if t.Status == domain.TripCompleted {
			revenue[t.VehicleID] += t.Revenue
		}
	}
	maintenance := make(map[string]float64)
	for _, m := range st.Maintenances {
		maintenance[m.VehicleID] += m.Cost
	}
	fuelCost := make(map[string]float64)
	var totalLiters float64
	for _, e := range st.Expenses {
		fuelCost[e.VehicleID] += e.FuelCost
		totalLiters += e.FuelLiters
	}

	var totalOdometer float64
	rows := make([]VehicleFinance, 0, len(st.Vehicles))
	for _, v := range st.Vehicles {
		totalOdometer += float64(v.Odometer)
		row := VehicleFinance{
			VehicleID:       v.ID,
			Plate:           v.Plate,
			Revenue:         revenue[v.ID],
			MaintenanceCost: maintenance[v.ID],
			FuelCost:        fuelCost[v.ID],
			AcquisitionCost: v.AcquisitionCost,
		}
		if v.AcquisitionCost != 0 {
			row.ROI = (row.Revenue - (row.MaintenanceCost + row.FuelCost)) / v.AcquisitionCost
		}
		rows = append(rows, row)
	}

	report := &FinanceReport{Vehicles: rows}
	if totalLiters != 0 {
		report.FuelEfficiency = totalOdometer / totalLiters
	}
	return report
}

// WriteCSV renders the report in the export layout the dashboard uses.
func (r *FinanceReport) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{"Vehicle", "Revenue", "MaintenanceCost", "FuelCost", "AcquisitionCost", "ROI"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, v := range r.Vehicles {
		row := []string{
			v.Plate,
			fmt.Sprintf("%.2f", v.Revenue),
			fmt.Sprintf("%.2f", v.MaintenanceCost),
			fmt.Sprintf("%.2f", v.FuelCost),
			fmt.Sprintf("%.2f", v.AcquisitionCost),
			fmt.Sprintf("%.4f", v.ROI),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row for %s: %w", v.Plate, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
