package db

import (
	"context"
	"fmt"

	"github.com/wellywell/fulfillment-audit/internal/types"
)

// LMS reads enrollments from the learning platform (edxapp) database.
type LMS struct {
	*Database
}

func NewLMS(d *Database) *LMS {
	return &LMS{Database: d}
}

// GetEnrollments returns every enrollment whose username is one of usernames and whose
// course is one of courseIDs. The two filters are independent, so the result can contain
// pairs that never appear together in an order.
func (l *LMS) GetEnrollments(ctx context.Context, usernames []string, courseIDs []string) ([]types.Enrollment, error) {
	if len(usernames) == 0 || len(courseIDs) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT
			u.username
			, e.course_id
			, e.mode
			, e.is_active
		FROM
			student_courseenrollment e
			JOIN auth_user u ON (u.id = e.user_id)
		WHERE
			u.username IN (%s)
			AND e.course_id IN (%s)
	`, placeholders(len(usernames)), placeholders(len(courseIDs)))

	args := make([]any, 0, len(usernames)+len(courseIDs))
	for _, u := range usernames {
		args = append(args, u)
	}
	for _, c := range courseIDs {
		args = append(args, c)
	}

	rows, cancel, err := l.query(ctx, "get enrollments", query, args...)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer rows.Close()

	var enrollments []types.Enrollment
	for rows.Next() {
		var e types.Enrollment
		var mode string
		if err := rows.Scan(&e.Username, &e.CourseID, &mode, &e.IsActive); err != nil {
			return nil, &QueryError{Store: l.name, Op: "scan enrollments", Err: err}
		}
		e.Mode = types.Mode(mode)
		enrollments = append(enrollments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Store: l.name, Op: "get enrollments", Err: err}
	}
	return enrollments, nil
}
