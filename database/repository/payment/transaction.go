package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/rightguydaniel/deluxconex-BE/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CreateRequestBundle inserts the order, its invoice and the wire payment
// request inside one mongo transaction so a failure on any insert leaves
// no partial state behind.
func (r *MongoPaymentRepo) CreateRequestBundle(
	ctx context.Context,
	order *models.Order,
	invoice *models.Invoice,
	request *models.PaymentRequest,
) error {
	client := r.requestsColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	now := time.Now()
	order.CreatedAt, order.UpdatedAt = now, now
	invoice.CreatedAt, invoice.UpdatedAt = now, now
	request.CreatedAt, request.UpdatedAt = now, now

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.ordersColl.InsertOne(sc, order); err != nil {
			return fmt.Errorf("insert order failed: %w", err)
		}
		if _, err := r.invoicesColl.InsertOne(sc, invoice); err != nil {
			return fmt.Errorf("insert invoice failed: %w", err)
		}
		if _, err := r.requestsColl.InsertOne(sc, request); err != nil {
			return fmt.Errorf("insert payment request failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("payment request transaction failed: %w", err)
	}

	return nil
}
