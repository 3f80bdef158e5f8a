// Package orderstore keeps the authoritative order collection in memory and
// writes it, as one JSON array, to a single key value slot after every change.
package orderstore

import (
	"errors"
	"fmt"
	"time"

	"grabgo/internal/core/domain/model/kernel"
	"grabgo/internal/core/domain/model/order"
)

// OrderDTO is the persisted shape of an order. Field names and enum labels
// match the records written by the browser client so an exported slot loads
// unchanged.
type OrderDTO struct {
	ID              string `json:"id"`
	UserEmail       string `json:"userEmail"`
	UserName        string `json:"userName"`
	UserPhone       string `json:"userPhone"`
	ServiceType     string `json:"serviceType"`
	ItemDescription string `json:"itemDescription"`
	Urgency         string `json:"urgency"`
	FromAddress     string `json:"fromAddress"`
	FromPincode     string `json:"fromPincode"`
	ToAddress       string `json:"toAddress"`
	ToPincode       string `json:"toPincode"`
	Status          string `json:"status"`
	Amount          int    `json:"amount"`
	PaymentStatus   string `json:"paymentStatus"`
	Timestamp       string `json:"timestamp"`
}

// fromDomain converts an order to its persisted representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
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
		Timestamp:       o.Timestamp().UTC().Format(time.RFC3339Nano),
	}
}

// toDomain rebuilds an order from its persisted representation using RestoreOrder,
// so a record that violates any order invariant is rejected.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	urgency, urgencyErr := order.ParseUrgency(dto.Urgency)
	status, statusErr := order.ParseStatus(dto.Status)
	paymentStatus, paymentErr := order.ParsePaymentStatus(dto.PaymentStatus)
	pickup, pickupErr := kernel.NewAddress(dto.FromAddress, dto.FromPincode)
	drop, dropErr := kernel.NewAddress(dto.ToAddress, dto.ToPincode)

	createdAt, timeErr := time.Parse(time.RFC3339Nano, dto.Timestamp)
	if timeErr != nil {
		timeErr = fmt.Errorf("timestamp %q: %w", dto.Timestamp, timeErr)
	}

	if err = errors.Join(urgencyErr, statusErr, paymentErr, pickupErr, dropErr, timeErr); err != nil {
		return nil, fmt.Errorf("order %s: %w", dto.ID, err)
	}

	return order.RestoreOrder(
		id,
		dto.UserEmail,
		dto.ServiceType,
		urgency,
		order.Details{
			UserName:        dto.UserName,
			UserPhone:       dto.UserPhone,
			ItemDescription: dto.ItemDescription,
			Pickup:          pickup,
			Drop:            drop,
		},
		status,
		paymentStatus,
		dto.Amount,
		createdAt.UTC(),
	)
}
