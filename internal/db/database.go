package db

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/wellywell/fulfillment-audit/internal/config"
)

const (
	defaultMySQLPort    = 3306
	defaultPostgresPort = 5432
)

// Database is a read-only handle on one of the audited stores.
type Database struct {
	name         string
	driver       string
	queryTimeout time.Duration
	pool         *sql.DB
}

func NewDatabase(ctx context.Context, name string, conf config.Database, connectTimeout, queryTimeout time.Duration) (*Database, error) {

	dsn, err := DSN(conf, connectTimeout, queryTimeout)
	if err != nil {
		return nil, err
	}

	p, err := sql.Open(conf.Driver, dsn)
	if err != nil {
		return nil, &QueryError{Store: name, Op: "open", Err: err}
	}
	// One query per store and run.
	p.SetMaxOpenConns(2)
	p.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := p.PingContext(pingCtx); err != nil {
		p.Close()
		return nil, &QueryError{Store: name, Op: "connect", Err: err}
	}

	return &Database{
		name:         name,
		driver:       conf.Driver,
		queryTimeout: queryTimeout,
		pool:         p,
	}, nil
}

func (d *Database) Name() string {
	return d.name
}

func (d *Database) Close() error {
	return d.pool.Close()
}

// query runs a statement written with '?' placeholders and bounded by the query timeout.
// The returned cancel func must be called after rows are consumed.
func (d *Database) query(ctx context.Context, op string, query string, args ...any) (*sql.Rows, context.CancelFunc, error) {
	ctx, cancel := context.WithTimeout(ctx, d.queryTimeout)
	rows, err := d.pool.QueryContext(ctx, rebind(d.driver, query), args...)
	if err != nil {
		cancel()
		return nil, nil, &QueryError{Store: d.name, Op: op, Err: err}
	}
	return rows, cancel, nil
}

// DSN builds the driver specific connection string.
func DSN(conf config.Database, connectTimeout, queryTimeout time.Duration) (string, error) {
	switch conf.Driver {
	case config.DriverMySQL:
		port := conf.Port
		if port == 0 {
			port = defaultMySQLPort
		}
		c := mysql.NewConfig()
		c.Net = "tcp"
		c.Addr = net.JoinHostPort(conf.Host, strconv.Itoa(port))
		c.User = conf.User
		c.Passwd = conf.Password
		c.DBName = conf.Name
		c.ParseTime = true
		c.Loc = time.UTC
		c.Timeout = connectTimeout
		c.ReadTimeout = queryTimeout
		return c.FormatDSN(), nil

	case config.DriverPgx:
		port := conf.Port
		if port == 0 {
			port = defaultPostgresPort
		}
		q := url.Values{}
		q.Set("connect_timeout", strconv.Itoa(int(connectTimeout.Seconds())))
		q.Set("timezone", "UTC")
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(conf.User, conf.Password),
			Host:     net.JoinHostPort(conf.Host, strconv.Itoa(port)),
			Path:     "/" + conf.Name,
			RawQuery: q.Encode(),
		}
		return u.String(), nil

	default:
		return "", fmt.Errorf("unsupported driver %q", conf.Driver)
	}
}

// rebind turns '?' placeholders into '$n' for postgres.
func rebind(driver string, query string) string {
	if driver != config.DriverPgx {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
