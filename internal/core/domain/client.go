package domain

// FieldName identifies one attribute of the closed client field set.
// The set is fixed at compile time; unknown attributes cannot exist.
type FieldName string

const (
	FieldClientName  FieldName = "name"
	FieldPhone       FieldName = "phone"
	FieldCarNumber   FieldName = "carNumber"
	FieldOrderQr     FieldName = "orderQr"
	FieldPricePerMo  FieldName = "pricePerMonth"
	FieldTireCount   FieldName = "tireCount"
	FieldHasRims     FieldName = "hasRims"
	FieldStartDate   FieldName = "startDate"
	FieldDuration    FieldName = "duration"
	FieldReminder    FieldName = "reminder"
	FieldEndDate     FieldName = "endDate"
	FieldStorageLoc  FieldName = "storageLocation"
	FieldCell        FieldName = "cell"
	FieldTotalAmount FieldName = "totalAmount"
	FieldDebt        FieldName = "debt"
	FieldContract    FieldName = "contract"
	FieldClientAddr  FieldName = "clientAddress"
	FieldDealStatus  FieldName = "dealStatus"
	FieldTrafficSrc  FieldName = "trafficSource"
	FieldDotCode     FieldName = "dotCode"
)

// FieldNames lists every recognized field in rendering order.
var FieldNames = []FieldName{
	FieldClientName, FieldPhone, FieldCarNumber, FieldOrderQr, FieldPricePerMo,
	FieldTireCount, FieldHasRims, FieldStartDate, FieldDuration, FieldReminder,
	FieldEndDate, FieldStorageLoc, FieldCell, FieldTotalAmount, FieldDebt,
	FieldContract, FieldClientAddr, FieldDealStatus, FieldTrafficSrc, FieldDotCode,
}

// Client is one storage order row from the active backend. All attributes are
// kept as display strings; the backends deliver them pre-formatted.
type Client struct {
	ChatID          string `json:"chatId" bson:"chat_id"`
	Name            string `json:"name" bson:"name"`
	Phone           string `json:"phone" bson:"phone"`
	CarNumber       string `json:"carNumber" bson:"car_number"`
	OrderQr         string `json:"orderQr" bson:"qr_code"`
	PricePerMonth   string `json:"pricePerMonth" bson:"price_month"`
	TireCount       string `json:"tireCount" bson:"tire_count"`
	HasRims         string `json:"hasRims" bson:"has_rims"`
	StartDate       string `json:"startDate" bson:"date_start"`
	Duration        string `json:"duration" bson:"storage_period"`
	Reminder        string `json:"reminder" bson:"remind_date"`
	EndDate         string `json:"endDate" bson:"date_end"`
	StorageLocation string `json:"storageLocation" bson:"warehouse"`
	Cell            string `json:"cell" bson:"cell"`
	TotalAmount     string `json:"totalAmount" bson:"total_amount"`
	Debt            string `json:"debt" bson:"debt"`
	Contract        string `json:"contract" bson:"contract_number"`
	ClientAddress   string `json:"clientAddress" bson:"address"`
	DealStatus      string `json:"dealStatus" bson:"status"`
	TrafficSource   string `json:"trafficSource" bson:"traffic_source"`
	DotCode         string `json:"dotCode" bson:"dot_code"`
}

// Field returns the value of a recognized attribute. Unknown names yield "".
func (c Client) Field(name FieldName) string {
	switch name {
	case FieldClientName:
		return c.Name
	case FieldPhone:
		return c.Phone
	case FieldCarNumber:
		return c.CarNumber
	case FieldOrderQr:
		return c.OrderQr
	case FieldPricePerMo:
		return c.PricePerMonth
	case FieldTireCount:
		return c.TireCount
	case FieldHasRims:
		return c.HasRims
	case FieldStartDate:
		return c.StartDate
	case FieldDuration:
		return c.Duration
	case FieldReminder:
		return c.Reminder
	case FieldEndDate:
		return c.EndDate
	case FieldStorageLoc:
		return c.StorageLocation
	case FieldCell:
		return c.Cell
	case FieldTotalAmount:
		return c.TotalAmount
	case FieldDebt:
		return c.Debt
	case FieldContract:
		return c.Contract
	case FieldClientAddr:
		return c.ClientAddress
	case FieldDealStatus:
		return c.DealStatus
	case FieldTrafficSrc:
		return c.TrafficSource
	case FieldDotCode:
		return c.DotCode
	}
	return ""
}

// ArchiveOrder is one completed storage order from the archive backend.
// Same shape as Client; kept separate so the two cannot be mixed up.
type ArchiveOrder Client

// MessageTemplate is a canned admin message loaded from the active backend.
type MessageTemplate struct {
	Title string `json:"title" bson:"title"`
	Text  string `json:"text" bson:"text"`
}
