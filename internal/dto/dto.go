// Package dto holds the JSON request/response bodies of the REST API.
package dto

import "time"

type PingResponse struct {
	Message string `json:"message"`
}

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type DropPoint struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type DonationCreate struct {
	RequesterID int64     `json:"requester_ID"`
	Item        string    `json:"item"`
	Quantity    string    `json:"quantity"`
	Pickup      *GeoPoint `json:"pickup,omitempty"`
}

type DonationUpdate struct {
	RequesterID int64     `json:"requester_ID"`
	Item        *string   `json:"item,omitempty"`
	Quantity    *string   `json:"quantity,omitempty"`
	Pickup      *GeoPoint `json:"pickup,omitempty"`
}

type Donation struct {
	ID          string     `json:"donation_ID"`
	RequesterID int64      `json:"requester_ID"`
	CourierID   *int64     `json:"courier_ID,omitempty"`
	Item        string     `json:"item"`
	Quantity    string     `json:"quantity"`
	Pickup      *GeoPoint  `json:"pickup,omitempty"`
	Drop        *DropPoint `json:"drop,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type TransitionRequest struct {
	TargetStatus string `json:"target_status"`
}

type TransitionResponse struct {
	DonationID string `json:"donation_ID"`
	Status     string `json:"status"`
}

type AssignRequest struct {
	DonationID string `json:"donation_ID"`
	CourierID  int64  `json:"courier_ID"`
}

type AssignResponse struct {
	DonationID string     `json:"donation_ID"`
	CourierID  int64      `json:"courier_ID"`
	Status     string     `json:"status"`
	Drop       *DropPoint `json:"drop,omitempty"`
}

type SuggestedCourier struct {
	CourierID  int64   `json:"courier_ID"`
	Name       string  `json:"name"`
	DistanceKM float64 `json:"distance_km"`
}

type SuggestResponse struct {
	DonationID string             `json:"donation_ID"`
	Couriers   []SuggestedCourier `json:"couriers"`
}

type Courier struct {
	ID        int64     `json:"courier_ID"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	IsBlocked bool      `json:"is_blocked"`
	Location  *GeoPoint `json:"location,omitempty"`
}

type CourierLocationUpdate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
