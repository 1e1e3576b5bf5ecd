package lookup

import (
	"sort"
	"time"

	"github.com/arjun-kp/PayTrail/config"
	"github.com/arjun-kp/PayTrail/models"
	"github.com/arjun-kp/PayTrail/tabular"
	"github.com/arjun-kp/PayTrail/utils"
)

// ErrNoIdentity is the failure message returned when a request carries
// neither an email nor a phone number after normalization.
const ErrNoIdentity = "No email or phone provided"

// Service resolves a customer identity into the customer's transaction
// history. It holds no per-request state; every call reads the table source
// fresh.
type Service struct {
	src    tabular.Source
	tables config.TableNames
}

func NewService(src tabular.Source, tables config.TableNames) *Service {
	return &Service{src: src, tables: tables}
}

// CustomerData runs the full lookup pipeline: normalize the identity, match
// payments, join orders and refunds on the payment ids, sort each list
// newest first and wrap everything in the response envelope. Table-source
// errors become a failure envelope with empty arrays; partial results are
// never returned.
func (s *Service) CustomerData(email, phone string) models.CustomerDataResponse {
	normEmail := NormalizeEmail(email)
	normPhone := NormalizePhone(phone)
	if normEmail == "" && normPhone == "" {
		return models.FailureResponse(ErrNoIdentity)
	}

	payments, paymentIDs, err := s.fetchPayments(normEmail, normPhone)
	if err != nil {
		utils.LogError("Customer data lookup failed on payments table: %v", err)
		return models.FailureResponse(err.Error())
	}

	orders, err := s.fetchOrders(paymentIDs)
	if err != nil {
		utils.LogError("Customer data lookup failed on orders table: %v", err)
		return models.FailureResponse(err.Error())
	}

	refunds, err := s.fetchRefunds(paymentIDs)
	if err != nil {
		utils.LogError("Customer data lookup failed on refunds table: %v", err)
		return models.FailureResponse(err.Error())
	}

	sortNewestFirst(payments, func(p models.PaymentRecord) string { return p.CreatedAt })
	sortNewestFirst(orders, func(o models.OrderRecord) string { return o.CreatedAt })
	sortNewestFirst(refunds, func(r models.RefundRecord) string { return r.CreatedAt })

	utils.LogDebug("Customer data lookup matched %d payments, %d orders, %d refunds",
		len(payments), len(orders), len(refunds))

	return models.CustomerDataResponse{
		Success:       true,
		Payments:      payments,
		Orders:        orders,
		Refunds:       refunds,
		CustomerEmail: email,
		CustomerPhone: phone,
	}
}

func (s *Service) fetchPayments(email, phone string) ([]models.PaymentRecord, []string, error) {
	table, err := s.src.Table(s.tables.Payments)
	if err != nil {
		return nil, nil, err
	}

	rows, err := FindMatchingPayments(table, email, phone)
	if err != nil {
		return nil, nil, err
	}

	payments := make([]models.PaymentRecord, 0, len(rows))
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		p := ProjectPayment(row)
		payments = append(payments, p)
		if p.ID != "" {
			ids = append(ids, p.ID)
		}
	}
	return payments, ids, nil
}

func (s *Service) fetchOrders(paymentIDs []string) ([]models.OrderRecord, error) {
	table, err := s.src.Table(s.tables.Orders)
	if err != nil {
		return nil, err
	}

	rows, err := FindByForeignKey(table, "payment_id", paymentIDs)
	if err != nil {
		return nil, err
	}

	orders := make([]models.OrderRecord, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, ProjectOrder(row))
	}
	return orders, nil
}

func (s *Service) fetchRefunds(paymentIDs []string) ([]models.RefundRecord, error) {
	table, err := s.src.Table(s.tables.Refunds)
	if err != nil {
		return nil, err
	}

	rows, err := FindByForeignKey(table, "payment_id", paymentIDs)
	if err != nil {
		return nil, err
	}

	refunds := make([]models.RefundRecord, 0, len(rows))
	for _, row := range rows {
		refunds = append(refunds, ProjectRefund(row))
	}
	return refunds, nil
}

// timestampLayouts covers the formats seen in gateway exports and
// spreadsheet-edited sheets, most specific first.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006, 15:04:05",
	"02/01/2006 15:04:05",
	"02/01/2006",
	"2/1/2006, 3:04:05 pm",
}

// ParseTimestamp parses a created_at cell against the known layouts. An
// unparsable value returns the zero time, which sorts after every valid
// timestamp in newest-first order and equal to other unparsable values.
func ParseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// sortNewestFirst orders a projected list by parsed created_at descending.
// Timestamps are parsed once up front, and the sort is stable so equal
// (including mutually unparsable) timestamps keep their scan order.
func sortNewestFirst[T any](items []T, createdAt func(T) string) {
	type keyed struct {
		at   time.Time
		item T
	}
	pairs := make([]keyed, len(items))
	for i, item := range items {
		pairs[i] = keyed{at: ParseTimestamp(createdAt(item)), item: item}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].at.After(pairs[j].at)
	})
	for i := range pairs {
		items[i] = pairs[i].item
	}
}
