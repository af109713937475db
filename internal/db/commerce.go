package db

import (
	"context"
	"time"

	"github.com/wellywell/fulfillment-audit/internal/types"
)

// Commerce reads orders from the ecommerce database.
type Commerce struct {
	*Database
}

func NewCommerce(d *Database) *Commerce {
	return &Commerce{Database: d}
}

// GetOrders returns completed, unrefunded line items placed after the given date,
// ordered by username, course and placement date.
func (c *Commerce) GetOrders(ctx context.Context, placedAfter time.Time) ([]types.Order, error) {
	query := `
		SELECT
			u.username
			, u.email
			, o.number
			, o.date_placed
			, o.total_excl_tax
			, modes.value_text AS mode
			, pav.value_text AS course_id
		FROM
			order_order o
			JOIN ecommerce_user u ON (o.user_id = u.id)
			JOIN order_line ol ON (ol.order_id = o.id)
			JOIN catalogue_productattributevalue pav ON (pav.product_id = ol.product_id)
			JOIN catalogue_productattribute pa ON (pa.id = pav.attribute_id AND pa.code = 'course_key')
			JOIN (
				SELECT pav2.product_id, pav2.value_text
				FROM catalogue_productattributevalue pav2
				JOIN catalogue_productattribute pa2 ON (pa2.id = pav2.attribute_id AND pa2.code = 'certificate_type')
			) modes ON (modes.product_id = ol.product_id)
			LEFT JOIN refund_refundline rl ON (rl.order_line_id = ol.id)
		WHERE
			o.status = 'Complete'
			AND o.date_placed > ?
			AND rl.id IS NULL
		ORDER BY
			u.username ASC
			, pav.value_text ASC
			, o.date_placed ASC
	`
	rows, cancel, err := c.query(ctx, "get orders", query, placedAfter.UTC())
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer rows.Close()

	var orders []types.Order
	for rows.Next() {
		var o types.Order
		var mode string
		err := rows.Scan(&o.Username, &o.Email, &o.Number, &o.DatePlaced, &o.Total, &mode, &o.CourseID)
		if err != nil {
			return nil, &QueryError{Store: c.name, Op: "scan orders", Err: err}
		}
		o.Mode = types.Mode(mode)
		o.DatePlaced = o.DatePlaced.UTC()
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Store: c.name, Op: "get orders", Err: err}
	}
	return orders, nil
}
