// Package purchaseorder forwards booking changes to the purchase-order
// service over AMQP.
package purchaseorder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"venue-booking/internal/domain/ledger"
	"venue-booking/internal/domain/pricing"
	"venue-booking/internal/pkg/clock"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	RoutingKeyCateringSync  = "purchase_order.catering.sync"
	RoutingKeyVendorPayment = "purchase_order.vendor_payment"
)

// Channel is the part of *amqp.Channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Publisher struct {
	ch       Channel
	exchange string
	clock    clock.Clock
}

func NewPublisher(ch Channel, exchange string, clk clock.Clock) *Publisher {
	return &Publisher{ch: ch, exchange: exchange, clock: clk}
}

// Dial opens a connection and channel and declares the topic exchange.
func Dial(url, exchange string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, fmt.Errorf("declare exchange: %w", err)
	}
	return conn, ch, nil
}

type CateringSyncMessage struct {
	BookingID   uuid.UUID  `json:"booking_id"`
	GuestCount  int        `json:"guest_count"`
	PackageName string     `json:"package_name"`
	PriceType   string     `json:"price_type"`
	SourceID    *string    `json:"source_package_id,omitempty"`
	LineItems   []LineItem `json:"line_items"`
	Total       int64      `json:"total"`
	SentAt      time.Time  `json:"sent_at"`
}

// LineItem is one priced row of the catering purchase order.
type LineItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Amount    int64  `json:"amount"`
}

type VendorPaymentMessage struct {
	PurchaseOrderID uuid.UUID  `json:"purchase_order_id"`
	TransactionID   uuid.UUID  `json:"transaction_id"`
	BookingID       uuid.UUID  `json:"booking_id"`
	VendorID        *uuid.UUID `json:"vendor_id,omitempty"`
	Amount          int64      `json:"amount"`
	Mode            string     `json:"mode"`
	Status          string     `json:"status"`
	OccurredAt      time.Time  `json:"occurred_at"`
}

func (p *Publisher) SyncCateringLineItems(ctx context.Context, bookingID uuid.UUID, guestCount int, pkg pricing.FoodPackage) error {
	items, total := CateringLineItems(guestCount, pkg)
	return p.publish(ctx, RoutingKeyCateringSync, bookingID.String(), CateringSyncMessage{
		BookingID:   bookingID,
		GuestCount:  guestCount,
		PackageName: pkg.Name,
		PriceType:   pkg.PriceType.String(),
		SourceID:    pkg.SourcePackageID,
		LineItems:   items,
		Total:       total,
		SentAt:      p.clock.Now(),
	})
}

func (p *Publisher) ApplyVendorPayment(ctx context.Context, purchaseOrderID uuid.UUID, t *ledger.Transaction) error {
	return p.publish(ctx, RoutingKeyVendorPayment, t.ID().String(), VendorPaymentMessage{
		PurchaseOrderID: purchaseOrderID,
		TransactionID:   t.ID(),
		BookingID:       t.BookingID(),
		VendorID:        t.VendorID(),
		Amount:          t.Amount().Minor(),
		Mode:            t.Mode(),
		Status:          string(t.Status()),
		OccurredAt:      t.OccurredAt(),
	})
}

func (p *Publisher) publish(ctx context.Context, key, messageID string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s message: %w", key, err)
	}
	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    messageID,
		Timestamp:    p.clock.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}
	return nil
}

// CateringLineItems prices the package the same way the booking does: one
// row per section at guestCount covers, plus the package row.
func CateringLineItems(guestCount int, pkg pricing.FoodPackage) ([]LineItem, int64) {
	items := make([]LineItem, 0, len(pkg.Sections)+1)
	var total int64

	base := LineItem{Name: pkg.Name, Quantity: guestCount, UnitPrice: pkg.Price.Minor()}
	if pkg.PriceType == pricing.PriceTypeFlat {
		base.Quantity = 1
	}
	base.Amount = base.UnitPrice * int64(base.Quantity)
	items = append(items, base)
	total += base.Amount

	for _, s := range pkg.Sections {
		item := LineItem{
			Name:      s.Name,
			Quantity:  guestCount,
			UnitPrice: s.PricePerPerson.Minor(),
			Amount:    s.PricePerPerson.Minor() * int64(guestCount),
		}
		items = append(items, item)
		total += item.Amount
	}
	return items, total
}

// Noop is used when purchase-order forwarding is disabled.
type Noop struct{}

func (Noop) SyncCateringLineItems(context.Context, uuid.UUID, int, pricing.FoodPackage) error {
	return nil
}

func (Noop) ApplyVendorPayment(context.Context, uuid.UUID, *ledger.Transaction) error {
	return nil
}
