package service

import (
	"time"

	"go-dealership-api/internal/access"
	"go-dealership-api/internal/model"
	"go-dealership-api/internal/repository"

	"github.com/google/uuid"
)

// ReportWindow restricts the sales report to a time slice
type ReportWindow string

const (
	WindowAll   ReportWindow = "all"
	WindowMonth ReportWindow = "month"
	WindowYear  ReportWindow = "year"
)

type ReportService interface {
	StockSummary(actor *model.User) (*StockSummary, error)
	SalesReport(actor *model.User, window ReportWindow, storeID *uuid.UUID) (*SalesReport, error)
}

// TypeStat holds count and stock value (sum of sale prices) for one
// vehicle type.
type TypeStat struct {
	Count      int     `json:"count"`
	StockValue float64 `json:"stock_value"`
}

type StockSummary struct {
	Cars        TypeStat `json:"cars"`
	Motorcycles TypeStat `json:"motorcycles"`
	Trucks      TypeStat `json:"trucks"`
	TotalCount  int      `json:"total_count"`
	TotalValue  float64  `json:"total_value"`
}

type StoreBreakdown struct {
	StoreID    uuid.UUID `json:"store_id"`
	StoreName  string    `json:"store_name"`
	Sales      int       `json:"sales"`
	Revenue    float64   `json:"revenue"`
	NetProfit  float64   `json:"net_profit"`
	StockCount int       `json:"stock_count"`
	StockValue float64   `json:"stock_value"`
}

type SalesReport struct {
	Sales     int              `json:"sales"`
	Revenue   float64          `json:"revenue"`
	CostBasis float64          `json:"cost_basis"`
	NetProfit float64          `json:"net_profit"`
	MarginPct float64          `json:"margin_pct"`
	PerStore  []StoreBreakdown `json:"per_store"`
}

type reportService struct {
	vehicleRepo repository.VehicleRepository
}

func NewReportService(vehicleRepo repository.VehicleRepository) ReportService {
	return &reportService{vehicleRepo: vehicleRepo}
}

// StockSummary partitions the actor's visible vehicle set and derives
// per-type counts and stock value over the in-stock partition. Nothing is
// persisted; the view is recomputed per request.
func (s *reportService) StockSummary(actor *model.User) (*StockSummary, error) {
	vehicles, err := s.vehicleRepo.FindScoped(access.VehicleScopeFor(actor))
	if err != nil {
		return nil, err
	}

	summary := &StockSummary{}
	for _, v := range vehicles {
		if v.Status != model.StatusInStock {
			continue
		}
		switch v.Type {
		case model.VehicleCar:
			summary.Cars.Count++
			summary.Cars.StockValue += v.SalePrice
		case model.VehicleMotorcycle:
			summary.Motorcycles.Count++
			summary.Motorcycles.StockValue += v.SalePrice
		case model.VehicleTruck:
			summary.Trucks.Count++
			summary.Trucks.StockValue += v.SalePrice
		}
	}
	summary.TotalCount = summary.Cars.Count + summary.Motorcycles.Count + summary.Trucks.Count
	summary.TotalValue = summary.Cars.StockValue + summary.Motorcycles.StockValue + summary.Trucks.StockValue
	return summary, nil
}

// SalesReport aggregates revenue, cost basis (purchase + extra costs) and
// net profit over the sold partition of the visible set, optionally
// restricted to the current month or year and to a single store.
func (s *reportService) SalesReport(actor *model.User, window ReportWindow, storeID *uuid.UUID) (*SalesReport, error) {
	vehicles, err := s.vehicleRepo.FindScoped(access.VehicleScopeFor(actor))
	if err != nil {
		return nil, err
	}

	report := &SalesReport{}
	perStore := map[uuid.UUID]*StoreBreakdown{}

	row := func(v *model.Vehicle) *StoreBreakdown {
		b, ok := perStore[v.StoreID]
		if !ok {
			b = &StoreBreakdown{StoreID: v.StoreID, StoreName: v.StoreName}
			perStore[v.StoreID] = b
		}
		return b
	}

	now := time.Now()
	for i := range vehicles {
		v := &vehicles[i]
		if storeID != nil && v.StoreID != *storeID {
			continue
		}

		if v.Status == model.StatusInStock {
			b := row(v)
			b.StockCount++
			b.StockValue += v.SalePrice
			continue
		}

		if !saleInWindow(v.SaleDate, window, now) {
			continue
		}

		cost := v.PurchasePrice + v.ExtraCosts
		report.Sales++
		report.Revenue += v.SalePrice
		report.CostBasis += cost

		b := row(v)
		b.Sales++
		b.Revenue += v.SalePrice
		b.NetProfit += v.SalePrice - cost
	}

	report.NetProfit = report.Revenue - report.CostBasis
	if report.Revenue > 0 {
		report.MarginPct = report.NetProfit / report.Revenue * 100
	}

	for _, b := range perStore {
		report.PerStore = append(report.PerStore, *b)
	}
	return report, nil
}

// saleInWindow parses the locale-formatted sale date (dd/mm/yyyy). Dates
// that fail to parse fall outside every window except "all".
func saleInWindow(saleDate string, window ReportWindow, now time.Time) bool {
	if window == WindowAll || window == "" {
		return true
	}

	sold, err := time.Parse(model.SaleDateLayout, saleDate)
	if err != nil {
		return false
	}

	switch window {
	case WindowMonth:
		return sold.Year() == now.Year() && sold.Month() == now.Month()
	case WindowYear:
		return sold.Year() == now.Year()
	}
	return true
}
