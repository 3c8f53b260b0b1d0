package domain

// FieldVisibility is the process-wide policy deciding which client attributes
// are rendered to non-admin users. One boolean per recognized field; the
// struct shape makes partial or unknown-key settings unrepresentable.
type FieldVisibility struct {
	Name            bool `json:"name" bson:"name"`
	Phone           bool `json:"phone" bson:"phone"`
	CarNumber       bool `json:"carNumber" bson:"car_number"`
	OrderQr         bool `json:"orderQr" bson:"qr_code"`
	PricePerMonth   bool `json:"pricePerMonth" bson:"price_month"`
	TireCount       bool `json:"tireCount" bson:"tire_count"`
	HasRims         bool `json:"hasRims" bson:"has_rims"`
	StartDate       bool `json:"startDate" bson:"date_start"`
	Duration        bool `json:"duration" bson:"storage_period"`
	Reminder        bool `json:"reminder" bson:"remind_date"`
	EndDate         bool `json:"endDate" bson:"date_end"`
	StorageLocation bool `json:"storageLocation" bson:"warehouse"`
	Cell            bool `json:"cell" bson:"cell"`
	TotalAmount     bool `json:"totalAmount" bson:"total_amount"`
	Debt            bool `json:"debt" bson:"debt"`
	Contract        bool `json:"contract" bson:"contract_number"`
	ClientAddress   bool `json:"clientAddress" bson:"address"`
	DealStatus      bool `json:"dealStatus" bson:"status"`
	TrafficSource   bool `json:"trafficSource" bson:"traffic_source"`
	DotCode         bool `json:"dotCode" bson:"dot_code"`
}

// DefaultFieldVisibility returns the settings applied at process start.
// Debt, client address and traffic source are hidden out of the box.
func DefaultFieldVisibility() FieldVisibility {
	return FieldVisibility{
		Name:            true,
		Phone:           true,
		CarNumber:       true,
		OrderQr:         true,
		PricePerMonth:   true,
		TireCount:       true,
		HasRims:         true,
		StartDate:       true,
		Duration:        true,
		Reminder:        true,
		EndDate:         true,
		StorageLocation: true,
		Cell:            true,
		TotalAmount:     true,
		Debt:            false,
		Contract:        true,
		ClientAddress:   false,
		DealStatus:      true,
		TrafficSource:   false,
		DotCode:         true,
	}
}

// Visible reports whether a recognized field may be rendered to a client.
// Unknown field names are never visible.
func (v FieldVisibility) Visible(name FieldName) bool {
	switch name {
	case FieldClientName:
		return v.Name
	case FieldPhone:
		return v.Phone
	case FieldCarNumber:
		return v.CarNumber
	case FieldOrderQr:
		return v.OrderQr
	case FieldPricePerMo:
		return v.PricePerMonth
	case FieldTireCount:
		return v.TireCount
	case FieldHasRims:
		return v.HasRims
	case FieldStartDate:
		return v.StartDate
	case FieldDuration:
		return v.Duration
	case FieldReminder:
		return v.Reminder
	case FieldEndDate:
		return v.EndDate
	case FieldStorageLoc:
		return v.StorageLocation
	case FieldCell:
		return v.Cell
	case FieldTotalAmount:
		return v.TotalAmount
	case FieldDebt:
		return v.Debt
	case FieldContract:
		return v.Contract
	case FieldClientAddr:
		return v.ClientAddress
	case FieldDealStatus:
		return v.DealStatus
	case FieldTrafficSrc:
		return v.TrafficSource
	case FieldDotCode:
		return v.DotCode
	}
	return false
}
