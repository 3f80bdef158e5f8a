package http

import (
	"time"

	"grabgo/internal/core/domain/model/catalog"
	"grabgo/internal/core/domain/model/order"
	"grabgo/internal/core/domain/services"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ServiceResponse describes one catalog entry.
type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateOrderRequest is the order form as submitted by the client.
type CreateOrderRequest struct {
	ServiceID       string `json:"serviceId"`
	FullName        string `json:"fullName"`
	MobileNumber    string `json:"mobileNumber"`
	ItemDescription string `json:"itemDescription"`
	Urgency         string `json:"urgency"`
	FromAddress     string `json:"fromAddress"`
	FromPincode     string `json:"fromPincode"`
	ToAddress       string `json:"toAddress"`
	ToPincode       string `json:"toPincode"`
}

// ChangeStatusRequest carries the target status label, e.g. "In Progress".
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse mirrors the persisted order record. PaymentLink is only set
// on the order returned from creation.
type OrderResponse struct {
	ID              string    `json:"id"`
	UserEmail       string    `json:"userEmail"`
	UserName        string    `json:"userName"`
	UserPhone       string    `json:"userPhone"`
	ServiceType     string    `json:"serviceType"`
	ItemDescription string    `json:"itemDescription"`
	Urgency         string    `json:"urgency"`
	FromAddress     string    `json:"fromAddress"`
	FromPincode     string    `json:"fromPincode"`
	ToAddress       string    `json:"toAddress"`
	ToPincode       string    `json:"toPincode"`
	Status          string    `json:"status"`
	Amount          int       `json:"amount"`
	PaymentStatus   string    `json:"paymentStatus"`
	Timestamp       time.Time `json:"timestamp"`
	PaymentLink     string    `json:"paymentLink,omitempty"`
}

// StatsResponse holds the admin dashboard counters.
type StatsResponse struct {
	Total        int `json:"total"`
	Pending      int `json:"pending"`
	Delivered    int `json:"delivered"`
	TotalRevenue int `json:"totalRevenue"`
}

func toServiceResponses(entries []catalog.Service) []ServiceResponse {
	response := make([]ServiceResponse, len(entries))
	for i, s := range entries {
		response[i] = ServiceResponse{ID: s.ID, Name: s.Name, Description: s.Description}
	}
	return response
}

func toOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID().String(),
		UserEmail:       o.UserEmail(),
		UserName:        o.UserName(),
		UserPhone:       o.UserPhone(),
		ServiceType:     o.ServiceType(),
		ItemDescription: o.ItemDescription(),
		Urgency:         o.Urgency().String(),
		FromAddress:     o.Pickup().Line(),
		FromPincode:     o.Pickup().Pincode(),
		ToAddress:       o.Drop().Line(),
		ToPincode:       o.Drop().Pincode(),
		Status:          o.Status().String(),
		Amount:          o.Amount(),
		PaymentStatus:   o.PaymentStatus().String(),
		Timestamp:       o.Timestamp(),
	}
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}
	return response
}

func toStatsResponse(s services.Stats) StatsResponse {
	return StatsResponse{
		Total:        s.Total,
		Pending:      s.Pending,
		Delivered:    s.Delivered,
		TotalRevenue: s.TotalRevenue,
	}
}
