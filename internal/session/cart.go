package session

import (
	"encoding/json"
	"math"
)

// CartLine is one distinct menu item in a cart. Price is the unit price
// captured when the item was first added.
type CartLine struct {
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// Cart maps menu item ids to lines. On the wire it is a JSON object keyed
// by the item id as a string: {"3": {"qty": 2, "price": 120}}.
type Cart struct {
	Lines map[int64]CartLine
}

func NewCart() Cart {
	return Cart{Lines: make(map[int64]CartLine)}
}

// Add increments the quantity of an existing line or inserts a new one
// with quantity 1. There is no upper bound on quantity.
func (c *Cart) Add(itemID int64, price float64) CartLine {
	if c.Lines == nil {
		c.Lines = make(map[int64]CartLine)
	}

	line, ok := c.Lines[itemID]
	if ok {
		line.Qty++
	} else {
		line = CartLine{Qty: 1, Price: price}
	}
	c.Lines[itemID] = line
	return line
}

// Count is the number of units across all lines.
func (c Cart) Count() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Qty
	}
	return n
}

// Total is the sum of qty*price, rounded to cents.
func (c Cart) Total() float64 {
	var sum float64
	for _, l := range c.Lines {
		sum += float64(l.Qty) * l.Price
	}
	return math.Round(sum*100) / 100
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) Clear() {
	c.Lines = make(map[int64]CartLine)
}

// Clone returns a cart that shares no map with c.
func (c Cart) Clone() Cart {
	out := NewCart()
	for id, l := range c.Lines {
		out.Lines[id] = l
	}
	return out
}

func (c Cart) MarshalJSON() ([]byte, error) {
	if c.Lines == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c.Lines)
}

func (c *Cart) UnmarshalJSON(data []byte) error {
	lines := make(map[int64]CartLine)
	if err := json.Unmarshal(data, &lines); err != nil {
		return err
	}
	c.Lines = lines
	return nil
}
