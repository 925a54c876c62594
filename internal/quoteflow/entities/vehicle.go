package entities

import (
	"fmt"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Vehicle is one vehicle on an auto policy.
type Vehicle struct {
	ID               string `json:"id"`
	VIN              string `json:"vin"`
	ModelYear        string `json:"modelYear"`
	Make             string `json:"make"`
	Model            string `json:"model"`
	PurchaseDate     string `json:"purchaseDate"`
	AnnualMileage    string `json:"annualMileage"`
	MileageBand      string `json:"mileageBand"`
	IsRentedOrLeased string `json:"isRentedOrLeased"`
}

// NewVehicle returns an empty vehicle with a fresh session-stable id.
func NewVehicle() Vehicle {
	return Vehicle{ID: uuid.NewString()}
}

// Label is the short display form used in list headers and the coverage
// matrix column headers.
func (v Vehicle) Label() string {
	if v.Make == "" && v.Model == "" {
		return "New Vehicle"
	}
	return v.ModelYear + " " + v.Make + " " + v.Model
}

// VehicleYears returns the model-year options: current year back 25 years,
// then "Older".
func VehicleYears(now time.Time) []string {
	years := []string{"(Select)"}
	current := now.Year()
	for y := current; y >= current-25; y-- {
		years = append(years, strconv.Itoa(y))
	}
	return append(years, "Older")
}

// PopularMakes is the make option list for the vehicle editor.
var PopularMakes = []string{
	"(Select)", "Acura", "Audi", "BMW", "Buick", "Cadillac", "Chevrolet", "Chrysler",
	"Dodge", "Ford", "GMC", "Honda", "Hyundai", "Infiniti", "Jeep", "Kia", "Lexus",
	"Lincoln", "Mazda", "Mercedes-Benz", "Mitsubishi", "Nissan", "Ram", "Subaru",
	"Tesla", "Toyota", "Volkswagen", "Volvo", "Other",
}

// MileageBands is the annual-mileage dropdown option list.
var MileageBands = []string{
	"(Select)", "0 - 2,500 miles", "2,501 - 7,500 miles", "7,501 - 15,000 miles",
	"15,001 - 20,000 miles", "20,001 - 25,000 miles", "Over 25,000 miles",
}

func DecodeVehicles(raw string) ([]Vehicle, error) {
	if raw == "" {
		return nil, nil
	}
	var vehicles []Vehicle
	if err := json.Unmarshal([]byte(raw), &vehicles); err != nil {
		return nil, fmt.Errorf("decode vehicles: %w", err)
	}
	return vehicles, nil
}

func EncodeVehicles(vehicles []Vehicle) string {
	if vehicles == nil {
		vehicles = []Vehicle{}
	}
	raw, err := json.Marshal(vehicles)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

// RemoveVehicle drops the vehicle with the given id, unless it is the only
// entry: a policy always keeps at least one vehicle.
func RemoveVehicle(vehicles []Vehicle, id string) []Vehicle {
	if len(vehicles) <= 1 {
		return vehicles
	}
	out := vehicles[:0:0]
	for _, v := range vehicles {
		if v.ID == id {
			continue
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return vehicles
	}
	return out
}
