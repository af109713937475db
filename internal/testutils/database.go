package testutils

import (
	"database/sql"
	"embed"
	"fmt"
	"strconv"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/ory/dockertest"
	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/fulfillment-audit/internal/config"
)

//go:embed migrations
var migrations embed.FS

const rootPassword = "secret"

// RunTestDatabases starts a MySQL container holding both the ecommerce and the edxapp schemas.
// clean is never nil and must be called even when err is not.
func RunTestDatabases() (ecommerce config.Database, edxapp config.Database, clean func(), err error) {
	clean = func() {}

	pool, err := dockertest.NewPool("")
	if err != nil {
		return ecommerce, edxapp, clean, fmt.Errorf("could not connect to docker %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.Run("mysql", "8.0", []string{"MYSQL_ROOT_PASSWORD=" + rootPassword})
	if err != nil {
		return ecommerce, edxapp, clean, fmt.Errorf("could not start mysql %w", err)
	}
	clean = func() {
		if err := pool.Purge(resource); err != nil {
			logger.Errorf("Could not purge mysql container %s", err.Error())
		}
	}

	port, err := strconv.Atoi(resource.GetPort("3306/tcp"))
	if err != nil {
		return ecommerce, edxapp, clean, fmt.Errorf("unexpected mysql port %w", err)
	}
	rootDSN := fmt.Sprintf("root:%s@tcp(localhost:%d)/", rootPassword, port)

	err = pool.Retry(func() error {
		conn, err := sql.Open("mysql", rootDSN)
		if err != nil {
			return err
		}
		defer conn.Close()
		return conn.Ping()
	})
	if err != nil {
		return ecommerce, edxapp, clean, fmt.Errorf("mysql did not start %w", err)
	}

	for _, name := range []string{"ecommerce", "edxapp"} {
		if err := createSchema(rootDSN, port, name); err != nil {
			return ecommerce, edxapp, clean, err
		}
	}

	base := config.Database{
		Driver:   config.DriverMySQL,
		Host:     "localhost",
		Port:     port,
		User:     "root",
		Password: rootPassword,
	}
	ecommerce, edxapp = base, base
	ecommerce.Name = "ecommerce"
	edxapp.Name = "edxapp"
	return ecommerce, edxapp, clean, nil
}

func createSchema(rootDSN string, port int, name string) error {
	conn, err := sql.Open("mysql", rootDSN)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.Exec("CREATE DATABASE IF NOT EXISTS " + name); err != nil {
		return fmt.Errorf("failed to create database %s %w", name, err)
	}

	src, err := iofs.New(migrations, "migrations/"+name)
	if err != nil {
		return fmt.Errorf("failed to read migrations %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src,
		fmt.Sprintf("mysql://root:%s@tcp(localhost:%d)/%s?multiStatements=true", rootPassword, port, name))
	if err != nil {
		return fmt.Errorf("failed to migrate %s %w", name, err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to migrate %s %w", name, err)
	}
	return nil
}
