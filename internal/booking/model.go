package booking

import (
	"encoding/json"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Booking is a table reservation. TimeOfDay is the offset from midnight.
type Booking struct {
	ID        int64
	Name      string
	Phone     string
	Date      time.Time
	TimeOfDay time.Duration
	Guests    int
}

func (b Booking) DateString() string {
	return b.Date.Format(dateLayout)
}

func (b Booking) TimeString() string {
	return time.Time{}.Add(b.TimeOfDay).Format(timeLayout)
}

func (b Booking) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID     int64  `json:"id"`
		Name   string `json:"name"`
		Phone  string `json:"phone"`
		Date   string `json:"date"`
		Time   string `json:"time"`
		Guests int    `json:"guests"`
	}{b.ID, b.Name, b.Phone, b.DateString(), b.TimeString(), b.Guests})
}
