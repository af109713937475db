package order

import (
	"context"
	"fmt"
	"sort"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/fulfillment-audit/internal/types"
)

type OrderSource interface {
	GetOrders(ctx context.Context, placedAfter time.Time) ([]types.Order, error)
}

type EnrollmentSource interface {
	GetEnrollments(ctx context.Context, usernames []string, courseIDs []string) ([]types.Enrollment, error)
}

type Notifier interface {
	NotifyUnfulfilled(ctx context.Context, windowStart time.Time, windowEnd time.Time, orders []types.Order) error
}

// Report is the outcome of a single audit run.
type Report struct {
	WindowStart time.Time
	WindowEnd   time.Time
	Orders      int
	Users       int
	Courses     int
	Enrollments int
	Collapsed   []types.Order
	Unfulfilled []types.Order
}

func (r *Report) OK() bool {
	return len(r.Unfulfilled) == 0
}

type Auditor struct {
	orders      OrderSource
	enrollments EnrollmentSource
	notifier    Notifier
	window      time.Duration
	rules       []UpgradeRule
	now         func() time.Time
}

type Option func(*Auditor)

func WithNotifier(n Notifier) Option {
	return func(a *Auditor) { a.notifier = n }
}

func WithRules(rules []UpgradeRule) Option {
	return func(a *Auditor) { a.rules = rules }
}

func WithClock(now func() time.Time) Option {
	return func(a *Auditor) { a.now = now }
}

func NewAuditor(orders OrderSource, enrollments EnrollmentSource, window time.Duration, opts ...Option) *Auditor {
	a := &Auditor{
		orders:      orders,
		enrollments: enrollments,
		window:      window,
		rules:       DefaultUpgradeRules,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run checks that every order placed within the window has a matching enrollment.
// An error means a store could not be read and nothing was reconciled.
func (a *Auditor) Run(ctx context.Context) (*Report, error) {
	end := a.now().UTC()
	report := &Report{WindowStart: end.Add(-a.window), WindowEnd: end}

	fetched, err := a.orders.GetOrders(ctx, report.WindowStart)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}

	orders, collapsed := Collapse(fetched, a.rules)
	report.Collapsed = collapsed

	usernames, courseIDs := distinct(orders)
	report.Orders = len(orders)
	report.Users = len(usernames)
	report.Courses = len(courseIDs)
	logger.Infof("Retrieved [%d] orders, for [%d] users and [%d] courses, from the ecommerce database.",
		report.Orders, report.Users, report.Courses)

	var enrollments []types.Enrollment
	if len(orders) > 0 {
		enrollments, err = a.enrollments.GetEnrollments(ctx, usernames, courseIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve enrollments: %w", err)
		}
	}
	report.Enrollments = len(enrollments)
	logger.Infof("Retrieved [%d] enrollments from the edxapp database.", report.Enrollments)

	report.Unfulfilled = Match(orders, enrollments)
	if report.OK() {
		logger.Info("No unfulfilled orders identified. All is well.")
		return report, nil
	}

	logger.Errorf("Identified [%d] unfulfilled order(s)", len(report.Unfulfilled))
	for _, o := range report.Unfulfilled {
		logger.WithFields(logger.Fields{
			"order":       o.Number,
			"username":    o.Username,
			"email":       o.Email,
			"course":      o.CourseID,
			"mode":        o.Mode,
			"date_placed": o.DatePlaced.Format(time.RFC3339),
			"total":       o.Total,
		}).Error("Order has no matching enrollment")
	}

	if a.notifier != nil {
		err := a.notifier.NotifyUnfulfilled(ctx, report.WindowStart, report.WindowEnd, report.Unfulfilled)
		if err != nil {
			logger.Warningf("Could not send unfulfilled orders alert: %s", err.Error())
		}
	}
	return report, nil
}

func distinct(orders []types.Order) (usernames []string, courseIDs []string) {
	users := make(map[string]struct{})
	courses := make(map[string]struct{})
	for _, o := range orders {
		users[o.Username] = struct{}{}
		courses[o.CourseID] = struct{}{}
	}
	for u := range users {
		usernames = append(usernames, u)
	}
	for c := range courses {
		courseIDs = append(courseIDs, c)
	}
	sort.Strings(usernames)
	sort.Strings(courseIDs)
	return usernames, courseIDs
}
