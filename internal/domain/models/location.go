package models

import (
	"fmt"
	"strconv"
)

// Coordinates is a geographic point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// String formats the point as "lat,lng", the form the map view accepts as a query.
func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

// Position is a point on the normalized 0..100 map canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// MapFocus tells the map view what to center on: a free text query or raw coordinates.
type MapFocus struct {
	Query       string       `json:"query"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// QueryFocus builds a focus from a free text query.
func QueryFocus(query string) MapFocus {
	return MapFocus{Query: query}
}

// CoordinatesFocus builds a focus from a coordinate pair. The query carries the "lat,lng" form.
func CoordinatesFocus(c Coordinates) MapFocus {
	return MapFocus{Query: c.String(), Coordinates: &c}
}
