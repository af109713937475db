//go:build integration_tests
// +build integration_tests

package db

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellywell/fulfillment-audit/internal/config"
	"github.com/wellywell/fulfillment-audit/internal/testutils"
	"github.com/wellywell/fulfillment-audit/internal/types"
)

var (
	ecommerceConf config.Database
	edxappConf    config.Database
)

func TestMain(m *testing.M) {
	code, err := runMain(m)

	if err != nil {
		log.Fatal(err)
	}
	os.Exit(code)
}

func runMain(m *testing.M) (int, error) {

	ecommerce, edxapp, cleanUp, err := testutils.RunTestDatabases()
	defer cleanUp()

	if err != nil {
		return 1, err
	}
	ecommerceConf, edxappConf = ecommerce, edxapp

	exitCode := m.Run()

	return exitCode, nil
}

func openRaw(t *testing.T, conf config.Database) *sql.DB {
	dsn, err := DSN(conf, 5*time.Second, 30*time.Second)
	require.NoError(t, err)
	conn, err := sql.Open(conf.Driver, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func exec(t *testing.T, conn *sql.DB, query string, args ...any) {
	_, err := conn.Exec(query, args...)
	require.NoError(t, err)
}

func seedOrders(t *testing.T, now time.Time) {
	conn := openRaw(t, ecommerceConf)

	exec(t, conn, "INSERT INTO ecommerce_user (id, username, email) VALUES (1, 'alice', 'alice@example.com'), (2, 'bob', 'bob@example.com')")

	// product 10: CS101 honor, product 11: CS101 verified, product 12: MATH200 audit
	exec(t, conn, `INSERT INTO catalogue_productattributevalue (product_id, attribute_id, value_text) VALUES
		(10, 1, 'CS101'), (10, 2, 'honor'),
		(11, 1, 'CS101'), (11, 2, 'verified'),
		(12, 1, 'MATH200'), (12, 2, 'audit')`)

	orders := []struct {
		id      int
		number  string
		user    int
		status  string
		placed  time.Time
		product int
	}{
		{1, "EDX-1", 1, "Complete", now.Add(-10 * time.Minute), 10},
		{2, "EDX-2", 1, "Complete", now.Add(-5 * time.Minute), 11},
		{3, "EDX-3", 2, "Complete", now.Add(-4 * time.Minute), 12},
		{4, "EDX-4", 2, "Open", now.Add(-3 * time.Minute), 11},
		{5, "EDX-5", 2, "Complete", now.Add(-2 * time.Minute), 10},
		{6, "EDX-6", 2, "Complete", now.Add(-2 * time.Hour), 11},
	}
	for _, o := range orders {
		exec(t, conn, "INSERT INTO order_order (id, number, user_id, status, total_excl_tax, date_placed) VALUES (?, ?, ?, ?, 49.00, ?)",
			o.id, o.number, o.user, o.status, o.placed)
		exec(t, conn, "INSERT INTO order_line (id, order_id, product_id) VALUES (?, ?, ?)", o.id, o.id, o.product)
	}
	// EDX-5 was refunded
	exec(t, conn, "INSERT INTO refund_refundline (order_line_id) VALUES (5)")

	t.Cleanup(func() {
		for _, table := range []string{"refund_refundline", "order_line", "order_order", "catalogue_productattributevalue", "ecommerce_user"} {
			conn.Exec("DELETE FROM " + table)
		}
	})
}

func seedEnrollments(t *testing.T) {
	conn := openRaw(t, edxappConf)

	exec(t, conn, "INSERT INTO auth_user (id, username) VALUES (1, 'alice'), (2, 'bob'), (3, 'carol')")
	exec(t, conn, `INSERT INTO student_courseenrollment (user_id, course_id, mode, is_active) VALUES
		(1, 'CS101', 'verified', 1),
		(2, 'MATH200', 'audit', 0),
		(2, 'CS101', 'honor', 1),
		(3, 'CS101', 'verified', 1),
		(1, 'PHYS300', 'verified', 1)`)

	t.Cleanup(func() {
		conn.Exec("DELETE FROM student_courseenrollment")
		conn.Exec("DELETE FROM auth_user")
	})
}

func TestGetOrders(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	seedOrders(t, now)

	database, err := NewDatabase(context.Background(), "ecommerce", ecommerceConf, 5*time.Second, 30*time.Second)
	require.NoError(t, err)
	defer database.Close()

	orders, err := NewCommerce(database).GetOrders(context.Background(), now.Add(-15*time.Minute))
	require.NoError(t, err)

	require.Len(t, orders, 3)
	assert.Equal(t, []string{"EDX-1", "EDX-2", "EDX-3"}, []string{orders[0].Number, orders[1].Number, orders[2].Number})

	first := orders[0]
	assert.Equal(t, "alice", first.Username)
	assert.Equal(t, "alice@example.com", first.Email)
	assert.Equal(t, "CS101", first.CourseID)
	assert.Equal(t, types.HonorMode, first.Mode)
	assert.Equal(t, "49.00", first.Total)
	assert.True(t, now.Add(-10*time.Minute).Equal(first.DatePlaced))
	assert.Equal(t, types.VerifiedMode, orders[1].Mode)
	assert.Equal(t, types.AuditMode, orders[2].Mode)
}

func TestGetOrdersEmptyWindow(t *testing.T) {
	database, err := NewDatabase(context.Background(), "ecommerce", ecommerceConf, 5*time.Second, 30*time.Second)
	require.NoError(t, err)
	defer database.Close()

	orders, err := NewCommerce(database).GetOrders(context.Background(), time.Now().Add(-15*time.Minute))
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestGetEnrollments(t *testing.T) {
	seedEnrollments(t)

	database, err := NewDatabase(context.Background(), "edxapp", edxappConf, 5*time.Second, 30*time.Second)
	require.NoError(t, err)
	defer database.Close()

	enrollments, err := NewLMS(database).GetEnrollments(context.Background(), []string{"alice", "bob"}, []string{"CS101", "MATH200"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []types.Enrollment{
		{Username: "alice", CourseID: "CS101", Mode: types.VerifiedMode, IsActive: true},
		{Username: "bob", CourseID: "MATH200", Mode: types.AuditMode, IsActive: false},
		{Username: "bob", CourseID: "CS101", Mode: types.HonorMode, IsActive: true},
	}, enrollments)
}

func TestNewDatabaseUnreachable(t *testing.T) {
	conf := ecommerceConf
	conf.Password = "wrong"

	_, err := NewDatabase(context.Background(), "ecommerce", conf, 2*time.Second, 2*time.Second)
	require.Error(t, err)

	var queryErr *QueryError
	if assert.ErrorAs(t, err, &queryErr) {
		assert.Equal(t, "connect", queryErr.Op)
	}
	assert.True(t, IsConnectionError(err))
}
